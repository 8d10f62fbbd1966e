package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"grouplink/domain"
	"grouplink/errors"
	"grouplink/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testInitTimeout = 50 * time.Millisecond

// stream converts a test-owned channel into the read-only form the Channel
// port exposes, so gomock's type assertion on the return value holds.
func stream(c chan domain.ChannelEvent) <-chan domain.ChannelEvent {
	return c
}

func newSessionFixture(t *testing.T) (*mocks.MockChannel, chan domain.ChannelEvent, ISessionService, *int32) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockCh := mocks.NewMockChannel(ctrl)
	evts := make(chan domain.ChannelEvent, 8)
	mockCh.EXPECT().Events().Return(stream(evts)).AnyTimes()

	var factoryCalls int32
	factory := func(ctx context.Context, userID string) (domain.Channel, error) {
		atomic.AddInt32(&factoryCalls, 1)
		return mockCh, nil
	}

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	svc := NewSessionService(log, factory, testInitTimeout, nil)
	return mockCh, evts, svc, &factoryCalls
}

func waitForState(t *testing.T, svc ISessionService, want domain.SessionState) {
	t.Helper()
	require.Eventually(t, func() bool {
		return svc.Status().State == want
	}, 2*time.Second, 5*time.Millisecond, "expected state %s", want)
}

func TestSessionService_StartIsIdempotent(t *testing.T) {
	req := require.New(t)
	_, _, svc, factoryCalls := newSessionFixture(t)

	state, err := svc.Start(context.Background(), "user-1")
	req.NoError(err)
	req.Equal(domain.StateInitializing, state)

	// A second start before READY must not create a second channel instance.
	state, err = svc.Start(context.Background(), "user-1")
	req.NoError(err)
	req.Equal(domain.StateInitializing, state)

	req.Eventually(func() bool {
		return atomic.LoadInt32(factoryCalls) == 1
	}, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	req.EqualValues(1, atomic.LoadInt32(factoryCalls))
}

func TestSessionService_PairingLifecycle(t *testing.T) {
	req := require.New(t)
	_, evts, svc, _ := newSessionFixture(t)

	_, err := svc.Start(context.Background(), "user-1")
	req.NoError(err)

	evts <- domain.PairingCodeProduced{Code: "2@pairing-payload"}
	waitForState(t, svc, domain.StateQRReady)

	status := svc.Status()
	req.True(strings.HasPrefix(status.PairingArtifact, "data:image/png;base64,"),
		"artifact should be an image data URL, got %q", status.PairingArtifact)

	// Not READY yet: resolution calls must be rejected.
	_, _, err = svc.ActiveChannel()
	req.ErrorIs(err, errors.ErrChannelNotReady)

	evts <- domain.AuthenticatedEvent{}
	waitForState(t, svc, domain.StateAuthenticated)

	evts <- domain.ReadyEvent{Self: domain.Identity{ID: "9876543210@c.us", Number: "9876543210"}}
	waitForState(t, svc, domain.StateReady)

	status = svc.Status()
	req.Empty(status.PairingArtifact, "artifact must be cleared once scanned")

	ch, self, err := svc.ActiveChannel()
	req.NoError(err)
	req.NotNil(ch)
	req.Equal("9876543210", self.Number)
}

func TestSessionService_RestoreSkipsPairingCode(t *testing.T) {
	req := require.New(t)
	_, evts, svc, _ := newSessionFixture(t)

	_, err := svc.Start(context.Background(), "user-1")
	req.NoError(err)

	// A restored session authenticates without re-emitting a pairing code.
	evts <- domain.AuthenticatedEvent{}
	waitForState(t, svc, domain.StateAuthenticated)

	evts <- domain.ReadyEvent{Self: domain.Identity{ID: "1@c.us", Number: "1"}}
	waitForState(t, svc, domain.StateReady)
	req.Empty(svc.Status().PairingArtifact)
}

func TestSessionService_DisconnectAllowsRestart(t *testing.T) {
	req := require.New(t)
	_, evts, svc, factoryCalls := newSessionFixture(t)

	_, err := svc.Start(context.Background(), "user-1")
	req.NoError(err)

	evts <- domain.ReadyEvent{Self: domain.Identity{ID: "1@c.us", Number: "1"}}
	waitForState(t, svc, domain.StateReady)

	evts <- domain.DisconnectedEvent{Reason: "phone offline"}
	waitForState(t, svc, domain.StateDisconnected)

	_, _, err = svc.ActiveChannel()
	req.ErrorIs(err, errors.ErrChannelNotReady)

	// DISCONNECTED is restartable: a new start creates a fresh session.
	state, err := svc.Start(context.Background(), "user-1")
	req.NoError(err)
	req.Equal(domain.StateInitializing, state)
	req.Eventually(func() bool {
		return atomic.LoadInt32(factoryCalls) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestSessionService_AuthFailureDisconnects(t *testing.T) {
	req := require.New(t)
	_, evts, svc, _ := newSessionFixture(t)

	_, err := svc.Start(context.Background(), "user-1")
	req.NoError(err)

	evts <- domain.AuthFailureEvent{Reason: "session corrupted"}
	waitForState(t, svc, domain.StateDisconnected)
}

func TestSessionService_StopAlwaysEndsIdle(t *testing.T) {
	req := require.New(t)
	mockCh, evts, svc, _ := newSessionFixture(t)

	_, err := svc.Start(context.Background(), "user-1")
	req.NoError(err)
	evts <- domain.ReadyEvent{Self: domain.Identity{ID: "1@c.us", Number: "1"}}
	waitForState(t, svc, domain.StateReady)

	// Teardown failures are logged and swallowed; IDLE is unconditional.
	mockCh.EXPECT().Logout(gomock.Any()).Return(fmt.Errorf("logout timed out"))
	mockCh.EXPECT().Close(gomock.Any()).Return(fmt.Errorf("already gone"))

	req.NoError(svc.Stop(context.Background()))
	req.Equal(domain.StateIdle, svc.Status().State)
	req.Empty(svc.Status().PairingArtifact)
}

func TestSessionService_StopWithoutSession(t *testing.T) {
	req := require.New(t)
	_, _, svc, _ := newSessionFixture(t)

	req.NoError(svc.Stop(context.Background()))
	req.Equal(domain.StateIdle, svc.Status().State)
}

func TestSessionService_FactoryFailureDisconnects(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	factory := func(ctx context.Context, userID string) (domain.Channel, error) {
		return nil, fmt.Errorf("%w: chromium missing", errors.ErrSidecarStartFailed)
	}
	svc := NewSessionService(log, factory, testInitTimeout, nil)

	_, err := svc.Start(context.Background(), "user-1")
	req.NoError(err)
	waitForState(t, svc, domain.StateDisconnected)
}

func TestSessionService_StopAbortsInFlightBoot(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Every launch blocks until its context is cancelled, standing in for a
	// slow sidecar dial.
	bootCtxs := make(chan context.Context, 2)
	factory := func(ctx context.Context, userID string) (domain.Channel, error) {
		bootCtxs <- ctx
		<-ctx.Done()
		return nil, ctx.Err()
	}
	svc := NewSessionService(log, factory, testInitTimeout, nil)

	_, err := svc.Start(context.Background(), "user-1")
	req.NoError(err)
	firstBoot := <-bootCtxs

	// Stop while the launch is still in flight must cancel it, so a
	// follow-up Start cannot race the old launch for the sidecar.
	req.NoError(svc.Stop(context.Background()))
	req.Eventually(func() bool {
		return firstBoot.Err() != nil
	}, time.Second, 5*time.Millisecond, "stale boot was not cancelled")

	state, err := svc.Start(context.Background(), "user-2")
	req.NoError(err)
	req.Equal(domain.StateInitializing, state)

	secondBoot := <-bootCtxs
	req.NoError(secondBoot.Err(), "fresh boot must start with a live context")

	req.NoError(svc.Stop(context.Background()))
}

func TestSessionService_WatchdogDoesNotForceTransition(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// A factory that never completes keeps the session INITIALIZING; the
	// watchdog only reports, it must not reset the state.
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })
	factory := func(ctx context.Context, userID string) (domain.Channel, error) {
		<-block
		return nil, context.Canceled
	}
	svc := NewSessionService(log, factory, 10*time.Millisecond, func() []any {
		return []any{"probe", "test"}
	})

	_, err := svc.Start(context.Background(), "user-1")
	req.NoError(err)

	time.Sleep(50 * time.Millisecond)
	req.Equal(domain.StateInitializing, svc.Status().State)
}
