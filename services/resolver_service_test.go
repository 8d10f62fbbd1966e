package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"grouplink/domain"
	"grouplink/domain/connect"
	"grouplink/errors"
	"grouplink/mocks"
	"grouplink/repositories"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testGroupID = "120363aabbcc@g.us"
	testInvite  = "https://chat.whatsapp.com/AbCdEfGh123?mode=gi_t"
	testUserID  = "user-42"
)

var testSelf = domain.Identity{ID: "919876543210@c.us", Number: "919876543210"}

// testResolverConfig shrinks every wait so retry and sync loops run in
// milliseconds.
func testResolverConfig() ResolverConfig {
	return ResolverConfig{
		ReadyTimeout:        50 * time.Millisecond,
		ReadyPollInterval:   5 * time.Millisecond,
		MaxAttempts:         3,
		BackoffBase:         time.Millisecond,
		BackoffCap:          3 * time.Millisecond,
		SyncAttempts:        10,
		SyncInterval:        time.Millisecond,
		ConfidenceThreshold: 3,
	}
}

type resolverFixture struct {
	channel  *mocks.MockChannel
	sessions *mocks.MockISessionService
	users    *mocks.MockIUserRepository
	resolver IGroupResolver
}

func newResolverFixture(t *testing.T) resolverFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := resolverFixture{
		channel:  mocks.NewMockChannel(ctrl),
		sessions: mocks.NewMockISessionService(ctrl),
		users:    mocks.NewMockIUserRepository(ctrl),
	}
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f.resolver = NewResolverService(log, f.sessions, f.users, testResolverConfig())
	return f
}

// ready wires the session mock as READY with the default self identity.
func (f resolverFixture) ready() {
	f.sessions.EXPECT().ActiveChannel().
		Return(domain.Channel(f.channel), testSelf, nil).AnyTimes()
}

// registered wires the user repo with a registered phone.
func (f resolverFixture) registered(phone string) {
	f.users.EXPECT().GetUserByID(testUserID).
		Return(repositories.User{ID: testUserID, Phone: phone}, nil)
}

func adminParticipants() []domain.Participant {
	return []domain.Participant{
		{ID: "111@c.us", RawNumber: "111"},
		{ID: "919876543210@c.us", RawNumber: "919876543210", IsAdmin: true},
		{ID: "222@c.us", RawNumber: "222"},
		{ID: "333@c.us", RawNumber: "333"},
		{ID: "444@c.us", RawNumber: "444"},
	}
}

func resolveCmd() connect.ResolveInviteCommand {
	return connect.ResolveInviteCommand{UserID: testUserID, InviteRef: testInvite}
}

func TestNormalizeInviteRef(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"Full https link with query", "https://chat.whatsapp.com/AbC123?mode=gi_t", "AbC123"},
		{"Http link", "http://chat.whatsapp.com/AbC123", "AbC123"},
		{"Bare code", "AbC123", "AbC123"},
		{"Query on bare code", "AbC123?x=y", "AbC123"},
		{"Whitespace", "  AbC123 ", "AbC123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeInviteRef(tt.ref); got != tt.want {
				t.Errorf("NormalizeInviteRef(%q) = %q; want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestResolverService_FastPathSuccess(t *testing.T) {
	req := require.New(t)
	f := newResolverFixture(t)
	f.ready()
	f.registered("9876543210")

	f.channel.EXPECT().ResolveInvite(gomock.Any(), "AbCdEfGh123").
		Return(domain.InviteInfo{GroupID: testGroupID, Subject: "Deals & Steals", Participants: adminParticipants()}, nil)
	f.channel.EXPECT().ResolveNumber(gomock.Any(), "9876543210").
		Return(domain.Identity{ID: "919876543210@c.us", Number: "919876543210"}, nil)

	snap, err := f.resolver.ResolveInvite(context.Background(), resolveCmd())

	req.NoError(err)
	req.Equal(testGroupID, snap.GroupID)
	req.Equal("Deals & Steals", snap.DisplayName)
	req.Equal(5, snap.MemberCount())
	req.True(snap.ResolvedViaFastPath)
}

func TestResolverService_RetriesTransientFailures(t *testing.T) {
	req := require.New(t)
	f := newResolverFixture(t)
	f.ready()
	f.registered("9876543210")

	transient := fmt.Errorf("%w: evaluation failed", errors.ErrChannelTransient)
	gomock.InOrder(
		f.channel.EXPECT().ResolveInvite(gomock.Any(), gomock.Any()).Return(domain.InviteInfo{}, transient),
		f.channel.EXPECT().ResolveInvite(gomock.Any(), gomock.Any()).Return(domain.InviteInfo{}, transient),
		f.channel.EXPECT().ResolveInvite(gomock.Any(), gomock.Any()).
			Return(domain.InviteInfo{GroupID: testGroupID, Subject: "Deals", Participants: adminParticipants()}, nil),
	)
	f.channel.EXPECT().ResolveNumber(gomock.Any(), gomock.Any()).
		Return(domain.Identity{}, fmt.Errorf("unresolvable"))

	snap, err := f.resolver.ResolveInvite(context.Background(), resolveCmd())

	req.NoError(err)
	req.Equal(testGroupID, snap.GroupID)
}

func TestResolverService_ExhaustedRetries(t *testing.T) {
	req := require.New(t)
	f := newResolverFixture(t)
	f.ready()

	f.channel.EXPECT().ResolveInvite(gomock.Any(), gomock.Any()).
		Return(domain.InviteInfo{}, fmt.Errorf("%w: context destroyed", errors.ErrChannelTransient)).
		Times(3)

	_, err := f.resolver.ResolveInvite(context.Background(), resolveCmd())

	req.ErrorIs(err, errors.ErrResolutionFailed)
	req.ErrorIs(err, errors.ErrChannelTransient)
}

func TestResolverService_SlowPathWithForcedSync(t *testing.T) {
	req := require.New(t)
	f := newResolverFixture(t)
	f.ready()
	f.registered("9876543210")

	// Invite metadata without participants forces the slow path; the first
	// full fetch is empty too, so a forced sync plus polling hydrates it.
	f.channel.EXPECT().ResolveInvite(gomock.Any(), gomock.Any()).
		Return(domain.InviteInfo{GroupID: testGroupID, Subject: "Deals"}, nil)
	gomock.InOrder(
		f.channel.EXPECT().Group(gomock.Any(), testGroupID).
			Return(domain.GroupRecord{ID: testGroupID, Name: "Deals", IsGroup: true}, nil),
		f.channel.EXPECT().SyncHistory(gomock.Any(), testGroupID, 1).Return(nil),
		f.channel.EXPECT().Group(gomock.Any(), testGroupID).
			Return(domain.GroupRecord{ID: testGroupID, Name: "Deals", IsGroup: true, Participants: adminParticipants()}, nil),
	)
	f.channel.EXPECT().ResolveNumber(gomock.Any(), gomock.Any()).
		Return(domain.Identity{}, fmt.Errorf("unresolvable"))

	snap, err := f.resolver.ResolveInvite(context.Background(), resolveCmd())

	req.NoError(err)
	req.False(snap.ResolvedViaFastPath)
	req.Equal(5, snap.MemberCount())
}

func TestResolverService_NotAGroup(t *testing.T) {
	req := require.New(t)
	f := newResolverFixture(t)
	f.ready()

	f.channel.EXPECT().ResolveInvite(gomock.Any(), gomock.Any()).
		Return(domain.InviteInfo{GroupID: "5551234@c.us"}, nil)
	f.channel.EXPECT().Group(gomock.Any(), "5551234@c.us").
		Return(domain.GroupRecord{ID: "5551234@c.us", Name: "Someone", IsGroup: false,
			Participants: []domain.Participant{{ID: "5551234@c.us", RawNumber: "5551234"}}}, nil)

	_, err := f.resolver.ResolveInvite(context.Background(), resolveCmd())

	req.ErrorIs(err, errors.ErrNotAGroup)
}

func TestResolverService_OpaqueFastPathUpgrades(t *testing.T) {
	req := require.New(t)
	f := newResolverFixture(t)
	f.ready()
	f.registered("9876543210")

	opaque := []domain.Participant{
		{ID: "11111@lid", RawNumber: "11111"},
		{ID: "22222@lid", RawNumber: "22222"},
		{ID: "33333@lid", RawNumber: "33333"},
	}
	f.channel.EXPECT().ResolveInvite(gomock.Any(), gomock.Any()).
		Return(domain.InviteInfo{GroupID: testGroupID, Subject: "Deals", Participants: opaque}, nil)
	f.channel.EXPECT().Group(gomock.Any(), testGroupID).
		Return(domain.GroupRecord{ID: testGroupID, Name: "Deals", IsGroup: true, Participants: adminParticipants()}, nil)
	f.channel.EXPECT().ResolveNumber(gomock.Any(), gomock.Any()).
		Return(domain.Identity{}, fmt.Errorf("unresolvable"))

	snap, err := f.resolver.ResolveInvite(context.Background(), resolveCmd())

	req.NoError(err)
	req.False(snap.ResolvedViaFastPath, "opaque fast path data must be hydrated via full fetch")
}

func TestResolverService_HydrationFailureKeepsFastPath(t *testing.T) {
	t.Run("should escalate a short opaque list when hydration fails", func(t *testing.T) {
		req := require.New(t)
		f := newResolverFixture(t)
		f.ready()
		f.registered("9876543210")

		opaque := []domain.Participant{
			{ID: "11111@lid", RawNumber: "11111"},
			{ID: "22222@lid", RawNumber: "22222"},
		}
		f.channel.EXPECT().ResolveInvite(gomock.Any(), gomock.Any()).
			Return(domain.InviteInfo{GroupID: testGroupID, Subject: "Deals", Participants: opaque}, nil)
		// The hydration fetch breaks; the opaque list stays fast-path data,
		// so its short length still triggers one escalation fetch, which now
		// finds the caller as admin.
		gomock.InOrder(
			f.channel.EXPECT().Group(gomock.Any(), testGroupID).
				Return(domain.GroupRecord{}, fmt.Errorf("store not hydrated")),
			f.channel.EXPECT().Group(gomock.Any(), testGroupID).
				Return(domain.GroupRecord{ID: testGroupID, Name: "Deals", IsGroup: true, Participants: adminParticipants()}, nil),
		)
		f.channel.EXPECT().ResolveNumber(gomock.Any(), gomock.Any()).
			Return(domain.Identity{}, fmt.Errorf("unresolvable"))

		snap, err := f.resolver.ResolveInvite(context.Background(), resolveCmd())

		req.NoError(err)
		req.False(snap.ResolvedViaFastPath)
		req.Equal(5, snap.MemberCount())
	})

	t.Run("should report fast path when the kept opaque list resolves the caller", func(t *testing.T) {
		req := require.New(t)
		f := newResolverFixture(t)
		f.ready()
		f.registered("9876543210")

		// The caller is addressable by raw number even though the ids are
		// opaque, so no escalation happens and the snapshot stays fast path.
		opaque := []domain.Participant{
			{ID: "11111@lid", RawNumber: "555"},
			{ID: "22222@lid", RawNumber: "919876543210", IsAdmin: true},
		}
		f.channel.EXPECT().ResolveInvite(gomock.Any(), gomock.Any()).
			Return(domain.InviteInfo{GroupID: testGroupID, Subject: "Deals", Participants: opaque}, nil)
		f.channel.EXPECT().Group(gomock.Any(), testGroupID).
			Return(domain.GroupRecord{}, fmt.Errorf("store not hydrated"))
		f.channel.EXPECT().ResolveNumber(gomock.Any(), gomock.Any()).
			Return(domain.Identity{}, fmt.Errorf("unresolvable"))

		snap, err := f.resolver.ResolveInvite(context.Background(), resolveCmd())

		req.NoError(err)
		req.True(snap.ResolvedViaFastPath)
		req.Equal(2, snap.MemberCount())
	})
}

func TestResolverService_ConfidenceEscalation(t *testing.T) {
	t.Run("should escalate to slow path when short fast list misses the caller", func(t *testing.T) {
		req := require.New(t)
		f := newResolverFixture(t)
		f.ready()
		f.registered("9876543210")

		short := []domain.Participant{
			{ID: "111@c.us", RawNumber: "111"},
			{ID: "222@c.us", RawNumber: "222"},
		}
		f.channel.EXPECT().ResolveInvite(gomock.Any(), gomock.Any()).
			Return(domain.InviteInfo{GroupID: testGroupID, Subject: "Deals", Participants: short}, nil)
		f.channel.EXPECT().ResolveNumber(gomock.Any(), gomock.Any()).
			Return(domain.Identity{}, fmt.Errorf("unresolvable"))
		// Escalation fetch finds the caller after all.
		f.channel.EXPECT().Group(gomock.Any(), testGroupID).
			Return(domain.GroupRecord{ID: testGroupID, Name: "Deals", IsGroup: true, Participants: adminParticipants()}, nil)

		snap, err := f.resolver.ResolveInvite(context.Background(), resolveCmd())

		req.NoError(err)
		req.False(snap.ResolvedViaFastPath)
	})

	t.Run("should trust a long fast list and fail without escalating", func(t *testing.T) {
		req := require.New(t)
		f := newResolverFixture(t)
		f.ready()
		f.registered("9876543210")

		five := []domain.Participant{
			{ID: "1@c.us", RawNumber: "1"}, {ID: "2@c.us", RawNumber: "2"},
			{ID: "3@c.us", RawNumber: "3"}, {ID: "4@c.us", RawNumber: "4"},
			{ID: "5@c.us", RawNumber: "5"},
		}
		f.channel.EXPECT().ResolveInvite(gomock.Any(), gomock.Any()).
			Return(domain.InviteInfo{GroupID: testGroupID, Subject: "Deals", Participants: five}, nil)
		f.channel.EXPECT().ResolveNumber(gomock.Any(), gomock.Any()).
			Return(domain.Identity{}, fmt.Errorf("unresolvable"))
		// No Group expectation: escalating here would fail the test.

		_, err := f.resolver.ResolveInvite(context.Background(), resolveCmd())

		req.ErrorIs(err, errors.ErrNotAMember)
	})
}

func TestResolverService_NotAnAdmin(t *testing.T) {
	req := require.New(t)
	f := newResolverFixture(t)
	f.ready()
	f.registered("9876543210")

	members := adminParticipants()
	for i := range members {
		members[i].IsAdmin = false
		members[i].IsSuperAdmin = false
	}
	f.channel.EXPECT().ResolveInvite(gomock.Any(), gomock.Any()).
		Return(domain.InviteInfo{GroupID: testGroupID, Subject: "Deals", Participants: members}, nil)
	f.channel.EXPECT().ResolveNumber(gomock.Any(), gomock.Any()).
		Return(domain.Identity{}, fmt.Errorf("unresolvable"))

	_, err := f.resolver.ResolveInvite(context.Background(), resolveCmd())

	req.ErrorIs(err, errors.ErrNotAnAdmin)
}

func TestResolverService_IdentityMismatchBeforeMembership(t *testing.T) {
	req := require.New(t)
	f := newResolverFixture(t)
	f.ready()
	// Registered phone belongs to a different account than the paired one.
	f.registered("8888888888")

	// The caller is absent from this list; a membership check would say
	// NotAMember, but the identity gate must fire first.
	f.channel.EXPECT().ResolveInvite(gomock.Any(), gomock.Any()).
		Return(domain.InviteInfo{GroupID: testGroupID, Subject: "Deals", Participants: adminParticipants()}, nil)

	_, err := f.resolver.ResolveInvite(context.Background(), resolveCmd())

	req.ErrorIs(err, errors.ErrIdentityMismatch)
}

func TestResolverService_WaitsForReadyWhenAuthenticated(t *testing.T) {
	req := require.New(t)
	f := newResolverFixture(t)
	f.registered("9876543210")

	notReady := fmt.Errorf("%w: state AUTHENTICATED", errors.ErrChannelNotReady)
	gomock.InOrder(
		f.sessions.EXPECT().ActiveChannel().Return(nil, domain.Identity{}, notReady),
		f.sessions.EXPECT().ActiveChannel().Return(nil, domain.Identity{}, notReady),
		f.sessions.EXPECT().ActiveChannel().Return(domain.Channel(f.channel), testSelf, nil),
	)
	f.sessions.EXPECT().Status().
		Return(domain.SessionStatus{State: domain.StateAuthenticated}).AnyTimes()

	f.channel.EXPECT().ResolveInvite(gomock.Any(), gomock.Any()).
		Return(domain.InviteInfo{GroupID: testGroupID, Subject: "Deals", Participants: adminParticipants()}, nil)
	f.channel.EXPECT().ResolveNumber(gomock.Any(), gomock.Any()).
		Return(domain.Identity{}, fmt.Errorf("unresolvable"))

	_, err := f.resolver.ResolveInvite(context.Background(), resolveCmd())
	req.NoError(err)
}

func TestResolverService_ChannelNotReady(t *testing.T) {
	req := require.New(t)
	f := newResolverFixture(t)

	notReady := fmt.Errorf("%w: state IDLE", errors.ErrChannelNotReady)
	f.sessions.EXPECT().ActiveChannel().Return(nil, domain.Identity{}, notReady)
	f.sessions.EXPECT().Status().Return(domain.SessionStatus{State: domain.StateIdle})

	_, err := f.resolver.ResolveInvite(context.Background(), resolveCmd())

	req.ErrorIs(err, errors.ErrChannelNotReady)
}

func TestResolverService_MissingInviteRef(t *testing.T) {
	req := require.New(t)
	f := newResolverFixture(t)

	_, err := f.resolver.ResolveInvite(context.Background(),
		connect.ResolveInviteCommand{UserID: testUserID})

	req.ErrorIs(err, errors.ErrInvalidRequest)
}

func TestResolverService_QueryOnlyInviteRef(t *testing.T) {
	req := require.New(t)
	f := newResolverFixture(t)

	// Normalization leaves nothing behind; the request is rejected before
	// any channel call.
	_, err := f.resolver.ResolveInvite(context.Background(),
		connect.ResolveInviteCommand{UserID: testUserID, InviteRef: "?mode=gi_t"})

	req.ErrorIs(err, errors.ErrInvalidRequest)
}
