//go:generate go run go.uber.org/mock/mockgen -source=session_service.go -destination=../mocks/mock_session_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"grouplink/domain"
	"grouplink/errors"

	"github.com/google/uuid"
)

// ChannelFactory builds a fresh automation-channel instance for a user.
// Production wires the sidecar launcher here; tests inject a mock.
type ChannelFactory func(ctx context.Context, userID string) (domain.Channel, error)

// ISessionService owns the single automation-channel session and its
// lifecycle state machine. It is the only writer of session state.
type ISessionService interface {
	// Start begins pairing, or reports the in-progress state when a session
	// already exists. It always returns promptly; pairing continues in the
	// background while callers poll Status.
	Start(ctx context.Context, userID string) (domain.SessionState, error)
	// Status returns the current projection. Never blocks, never fails.
	Status() domain.SessionStatus
	// Stop tears the session down, best effort, and always ends in IDLE.
	Stop(ctx context.Context) error
	// ActiveChannel returns the live channel handle and the authenticated
	// identity, or ErrChannelNotReady in any other state.
	ActiveChannel() (domain.Channel, domain.Identity, error)
}

type SessionService struct {
	log         *slog.Logger
	factory     ChannelFactory
	initTimeout time.Duration
	diagnostics func() []any // extra log attrs attached to watchdog reports, may be nil

	mu         sync.RWMutex
	session    *domain.Session
	channel    domain.Channel
	watchdog   *time.Timer
	bootCancel context.CancelFunc
}

func NewSessionService(log *slog.Logger, factory ChannelFactory,
	initTimeout time.Duration, diagnostics func() []any) ISessionService {
	return &SessionService{
		log:         log,
		factory:     factory,
		initTimeout: initTimeout,
		diagnostics: diagnostics,
	}
}

func (s *SessionService) Start(ctx context.Context, userID string) (domain.SessionState, error) {
	s.mu.Lock()
	if s.session != nil && !s.session.State.Restartable() {
		state := s.session.State
		s.mu.Unlock()
		// Idempotent: a second start while pairing is in flight must not
		// spawn a duplicate channel instance.
		s.log.Info("Session already exists", "state", state)
		return state, nil
	}

	sess := &domain.Session{
		ID:          uuid.NewString(),
		OwnerUserID: userID,
		State:       domain.StateInitializing,
	}
	s.session = sess
	s.channel = nil
	s.watchdog = time.AfterFunc(s.initTimeout, s.watchdogFired)

	// The channel outlives the request that created it; pairing continues
	// while the caller polls for status. The boot holds its own cancel so a
	// Stop can abort an in-flight launch instead of waiting it out.
	if s.bootCancel != nil {
		s.bootCancel()
	}
	bootCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.bootCancel = cancel
	s.mu.Unlock()

	s.log.Info("Initializing channel session", "user_id", userID, "session_id", sess.ID)

	go s.boot(bootCtx, sess.ID, userID)

	return domain.StateInitializing, nil
}

func (s *SessionService) boot(ctx context.Context, sessionID, userID string) {
	ch, err := s.factory(ctx, userID)
	if err != nil {
		s.log.Error("Channel startup failed", "err", err)
		s.mu.Lock()
		if s.session != nil && s.session.ID == sessionID {
			s.clearWatchdogLocked()
			s.session.State = domain.StateDisconnected
			s.session.PairingArtifact = ""
			s.channel = nil
		}
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	if s.session == nil || s.session.ID != sessionID {
		s.mu.Unlock()
		// A Stop won the race; release the channel we just built.
		_ = ch.Close(ctx)
		return
	}
	s.channel = ch
	s.mu.Unlock()

	go s.pump(sessionID, ch)
}

// pump feeds channel lifecycle events through the transition table until the
// channel closes its event stream.
func (s *SessionService) pump(sessionID string, ch domain.Channel) {
	for evt := range ch.Events() {
		s.apply(sessionID, evt)
	}
}

func (s *SessionService) apply(sessionID string, evt domain.ChannelEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || s.session.ID != sessionID {
		// Stale event from a torn-down session.
		return
	}

	switch e := evt.(type) {
	case domain.PairingCodeProduced:
		s.clearWatchdogLocked()
		artifact, err := RenderPairingArtifact(e.Code)
		if err != nil {
			s.log.Error("Pairing artifact rendering failed", "err", err)
			return
		}
		s.session.State = domain.StateQRReady
		s.session.PairingArtifact = artifact
		s.log.Info("Pairing code received", "state", domain.StateQRReady)

	case domain.AuthenticatedEvent:
		// On session restore this arrives without a prior pairing code.
		s.clearWatchdogLocked()
		s.session.State = domain.StateAuthenticated
		s.log.Info("Channel authenticated, waiting for ready")

	case domain.ReadyEvent:
		s.clearWatchdogLocked()
		s.session.State = domain.StateReady
		s.session.PairingArtifact = ""
		s.session.Self = e.Self
		s.log.Info("Channel ready", "self", e.Self.ID)

	case domain.AuthFailureEvent:
		s.clearWatchdogLocked()
		s.session.State = domain.StateDisconnected
		s.session.PairingArtifact = ""
		s.channel = nil
		s.log.Error("Channel authentication failed", "reason", e.Reason)

	case domain.DisconnectedEvent:
		s.clearWatchdogLocked()
		s.session.State = domain.StateDisconnected
		s.session.PairingArtifact = ""
		s.channel = nil
		s.log.Warn("Channel disconnected", "reason", e.Reason)

	default:
		s.log.Warn("Ignoring unknown channel event", "event", fmt.Sprintf("%T", evt))
	}
}

func (s *SessionService) Status() domain.SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return domain.SessionStatus{State: domain.StateIdle}
	}
	return domain.SessionStatus{
		State:           s.session.State,
		PairingArtifact: s.session.PairingArtifact,
	}
}

func (s *SessionService) Stop(ctx context.Context) error {
	s.mu.Lock()
	ch := s.channel
	s.channel = nil
	s.session = nil
	s.clearWatchdogLocked()
	if s.bootCancel != nil {
		// Abort any launch still in flight so it cannot race a later Start
		// for the sidecar port.
		s.bootCancel()
		s.bootCancel = nil
	}
	s.mu.Unlock()

	if ch == nil {
		s.log.Info("Stop called with no active channel, state reset", "state", domain.StateIdle)
		return nil
	}

	// Teardown is best effort: a failed logout must never leave the
	// session stuck outside IDLE.
	if err := ch.Logout(ctx); err != nil {
		s.log.Warn("Logout failed during teardown", "err", err)
	}
	if err := ch.Close(ctx); err != nil {
		s.log.Warn("Channel close failed during teardown", "err", err)
	}

	s.log.Info("Session stopped", "state", domain.StateIdle)
	return nil
}

func (s *SessionService) ActiveChannel() (domain.Channel, domain.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil || s.channel == nil || s.session.State != domain.StateReady {
		state := domain.StateIdle
		if s.session != nil {
			state = s.session.State
		}
		return nil, domain.Identity{}, fmt.Errorf("%w: state %s", errors.ErrChannelNotReady, state)
	}
	return s.channel, s.session.Self, nil
}

// watchdogFired surfaces stuck-initialization diagnostics. It deliberately
// never forces a transition: the intended recovery policy for a hung boot is
// an explicit Stop, not an automatic reset.
func (s *SessionService) watchdogFired() {
	s.mu.RLock()
	stuck := s.session != nil && s.session.State == domain.StateInitializing
	s.mu.RUnlock()

	if !stuck {
		return
	}

	attrs := []any{"timeout", s.initTimeout}
	if s.diagnostics != nil {
		attrs = append(attrs, s.diagnostics()...)
	}
	s.log.Error("Channel still INITIALIZING after watchdog timeout, session left untouched", attrs...)
}

// clearWatchdogLocked stops the initialization watchdog. Callers hold s.mu.
func (s *SessionService) clearWatchdogLocked() {
	if s.watchdog != nil {
		s.watchdog.Stop()
		s.watchdog = nil
	}
}
