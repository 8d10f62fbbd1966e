//go:generate go run go.uber.org/mock/mockgen -source=resolver_service.go -destination=../mocks/mock_resolver_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"grouplink/domain"
	"grouplink/domain/connect"
	"grouplink/domain/phone"
	"grouplink/errors"
	"grouplink/repositories"

	"github.com/samber/lo"
)

// inviteHosts are the transport wrappers stripped from shareable links.
var inviteHosts = []string{
	"https://chat.whatsapp.com/",
	"http://chat.whatsapp.com/",
}

// IGroupResolver resolves an invite reference into a verified, access
// controlled snapshot of the group behind it.
type IGroupResolver interface {
	ResolveInvite(ctx context.Context, cmd connect.ResolveInviteCommand) (domain.GroupSnapshot, error)
}

// ResolverConfig tunes the waits and retries of the resolution algorithm.
// Production uses Defaults; tests shrink the intervals.
type ResolverConfig struct {
	// ReadyTimeout bounds the wait for READY when the session is still
	// AUTHENTICATED at call time.
	ReadyTimeout      time.Duration
	ReadyPollInterval time.Duration
	// MaxAttempts bounds invite resolution retries against the channel.
	MaxAttempts int
	BackoffBase time.Duration
	BackoffCap  time.Duration
	// SyncAttempts/SyncInterval bound the post-forced-sync poll for the
	// participant list to populate.
	SyncAttempts int
	SyncInterval time.Duration
	// ConfidenceThreshold is the minimum fast-path participant count below
	// which an absent caller triggers one slow-path escalation.
	ConfidenceThreshold int
}

// DefaultResolverConfig returns the production tuning.
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		ReadyTimeout:        30 * time.Second,
		ReadyPollInterval:   500 * time.Millisecond,
		MaxAttempts:         3,
		BackoffBase:         time.Second,
		BackoffCap:          3 * time.Second,
		SyncAttempts:        10,
		SyncInterval:        200 * time.Millisecond,
		ConfidenceThreshold: 3,
	}
}

type ResolverService struct {
	log      *slog.Logger
	sessions ISessionService
	users    repositories.IUserRepository
	cfg      ResolverConfig
}

func NewResolverService(log *slog.Logger, sessions ISessionService,
	users repositories.IUserRepository, cfg ResolverConfig) IGroupResolver {
	return &ResolverService{log: log, sessions: sessions, users: users, cfg: cfg}
}

// ResolveInvite runs the full resolution algorithm: normalize the reference,
// resolve it against the channel with retries, obtain a participant list via
// the fast or slow path, gate on the registered identity, then verify
// membership and admin rights.
func (r *ResolverService) ResolveInvite(ctx context.Context, cmd connect.ResolveInviteCommand) (domain.GroupSnapshot, error) {
	if err := cmd.Validate(); err != nil {
		return domain.GroupSnapshot{}, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}

	code := NormalizeInviteRef(cmd.InviteRef)
	if code == "" {
		return domain.GroupSnapshot{}, fmt.Errorf("%w: empty invite code", errors.ErrInvalidRequest)
	}

	// 1. The channel must be fully READY; browser modules are not loaded in
	// AUTHENTICATED state, so wait briefly for the transition.
	ch, self, err := r.waitReady(ctx)
	if err != nil {
		return domain.GroupSnapshot{}, err
	}

	r.log.Info("Resolving invite code", "code", code, "user_id", cmd.UserID)

	// 2. Channel-level invite evaluation is known to fail intermittently;
	// retry with increasing backoff before giving up.
	info, err := r.resolveWithRetry(ctx, ch, code)
	if err != nil {
		return domain.GroupSnapshot{}, err
	}

	// 3. Fast path when the invite metadata already carries participants.
	fastPath := len(info.Participants) > 0
	participants := info.Participants
	groupName := info.Subject

	// A fast-path list made only of opaque identifiers carries no usable
	// contact identity; hydrate it through the full fetch when possible.
	needFetch := !fastPath || lo.NoneBy(participants, domain.Participant.Addressable)

	// 4. Slow path: full record fetch with forced sync.
	if needFetch {
		rec, err := r.fetchGroup(ctx, ch, info.GroupID)
		switch {
		case err != nil && fastPath:
			// Hydration is best effort: the list stays fast-path data so
			// the short-list escalation below still applies to it.
			r.log.Warn("Hydration failed, keeping opaque fast path data", "err", err)
		case err != nil:
			return domain.GroupSnapshot{}, fmt.Errorf("%w: %v", errors.ErrResolutionFailed, err)
		case !rec.IsGroup:
			return domain.GroupSnapshot{}, errors.ErrNotAGroup
		default:
			participants = rec.Participants
			groupName = rec.Name
			fastPath = false
		}
	}

	// 5. Identity gate before any membership check: verifying admin rights
	// is meaningless if the wrong physical account is paired.
	cands, err := r.identityCandidates(ctx, ch, self, cmd.UserID)
	if err != nil {
		return domain.GroupSnapshot{}, err
	}

	me, found := domain.FindSelf(participants, cands)

	// 6. A short fast-path list where the caller is absent is more likely
	// incomplete data than a true non-membership; escalate once.
	if !found && fastPath && len(participants) < r.cfg.ConfidenceThreshold {
		r.log.Warn("Fast path returned very few participants, escalating to full fetch",
			"count", len(participants))
		rec, err := r.fetchGroup(ctx, ch, info.GroupID)
		if err != nil {
			r.log.Error("Slow path escalation failed", "err", err)
		} else {
			participants = rec.Participants
			groupName = rec.Name
			fastPath = false
			me, found = domain.FindSelf(participants, cands)
		}
	}

	if !found {
		return domain.GroupSnapshot{}, errors.ErrNotAMember
	}
	if !me.IsAdmin && !me.IsSuperAdmin {
		return domain.GroupSnapshot{}, errors.ErrNotAnAdmin
	}

	r.log.Info("Verified admin status", "group", groupName, "fast_path", fastPath)

	return domain.GroupSnapshot{
		GroupID:             info.GroupID,
		DisplayName:         groupName,
		Participants:        participants,
		ResolvedViaFastPath: fastPath,
	}, nil
}

// NormalizeInviteRef strips the transport wrapper and query-string suffix
// from a shareable invite link, leaving the bare code.
func NormalizeInviteRef(ref string) string {
	code := strings.TrimSpace(ref)
	for _, host := range inviteHosts {
		code = strings.TrimPrefix(code, host)
	}
	code, _, _ = strings.Cut(code, "?")
	return code
}

// waitReady returns the active channel, waiting out the AUTHENTICATED to
// READY transition when needed.
func (r *ResolverService) waitReady(ctx context.Context) (domain.Channel, domain.Identity, error) {
	ch, self, err := r.sessions.ActiveChannel()
	if err == nil {
		return ch, self, nil
	}

	if r.sessions.Status().State != domain.StateAuthenticated {
		return nil, domain.Identity{}, err
	}

	r.log.Info("Channel is AUTHENTICATED but not READY, waiting")
	deadline := time.Now().Add(r.cfg.ReadyTimeout)
	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return nil, domain.Identity{}, fmt.Errorf("%w: %v", errors.ErrChannelNotReady, ctx.Err())
		case <-time.After(r.cfg.ReadyPollInterval):
		}

		if ch, self, err = r.sessions.ActiveChannel(); err == nil {
			return ch, self, nil
		}
		if r.sessions.Status().State != domain.StateAuthenticated {
			break
		}
	}
	return nil, domain.Identity{}, err
}

// resolveWithRetry attempts channel-level invite resolution up to MaxAttempts
// times with capped increasing backoff. The first attempt yielding a group id
// short-circuits the loop.
func (r *ResolverService) resolveWithRetry(ctx context.Context, ch domain.Channel, code string) (domain.InviteInfo, error) {
	var lastErr error

	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		info, err := ch.ResolveInvite(ctx, code)
		if err == nil && info.GroupID != "" {
			r.log.Info("Invite resolved", "attempt", attempt, "group_id", info.GroupID)
			return info, nil
		}

		if err == nil {
			err = fmt.Errorf("resolved invite carries no group id")
		}
		lastErr = err
		r.log.Warn("Invite resolution attempt failed", "attempt", attempt, "err", err)

		if attempt < r.cfg.MaxAttempts {
			wait := min(time.Duration(attempt)*r.cfg.BackoffBase, r.cfg.BackoffCap)
			select {
			case <-ctx.Done():
				return domain.InviteInfo{}, fmt.Errorf("%w: %v", errors.ErrResolutionFailed, ctx.Err())
			case <-time.After(wait):
			}
		}
	}

	return domain.InviteInfo{}, fmt.Errorf("%w after %d attempts: %w",
		errors.ErrResolutionFailed, r.cfg.MaxAttempts, lastErr)
}

// fetchGroup fetches the full record, forcing a minimal history sync and
// polling briefly when the participant list comes back empty.
func (r *ResolverService) fetchGroup(ctx context.Context, ch domain.Channel, groupID string) (domain.GroupRecord, error) {
	rec, err := ch.Group(ctx, groupID)
	if err != nil {
		return domain.GroupRecord{}, err
	}

	if len(rec.Participants) == 0 {
		r.log.Info("Participant list empty, triggering sync", "group_id", groupID)
		if err := ch.SyncHistory(ctx, groupID, 1); err != nil {
			r.log.Warn("Forced sync failed", "err", err)
		}

		for i := 0; i < r.cfg.SyncAttempts && len(rec.Participants) == 0; i++ {
			select {
			case <-ctx.Done():
				return domain.GroupRecord{}, ctx.Err()
			case <-time.After(r.cfg.SyncInterval):
			}
			if rec, err = ch.Group(ctx, groupID); err != nil {
				return domain.GroupRecord{}, err
			}
		}
	}

	return rec, nil
}

// identityCandidates verifies the registered phone against the authenticated
// identity and assembles every identifier form that may address this account
// in a membership list.
func (r *ResolverService) identityCandidates(ctx context.Context, ch domain.Channel,
	self domain.Identity, userID string) (domain.IdentityCandidates, error) {
	cands := domain.IdentityCandidates{
		SerializedIDs: []string{self.ID},
		Numbers:       []string{self.Number},
	}

	registeredPhone := ""
	user, err := r.users.GetUserByID(userID)
	if err != nil {
		// The lookup is best effort: a missing record skips the gate rather
		// than blocking resolution.
		r.log.Warn("Could not fetch registered phone", "user_id", userID, "err", err)
	} else {
		registeredPhone = user.Phone
	}

	if registeredPhone == "" {
		return cands, nil
	}

	if !phone.Match(self.Number, registeredPhone) {
		return domain.IdentityCandidates{}, fmt.Errorf(
			"%w: paired account %s does not match registered phone", errors.ErrIdentityMismatch, self.Number)
	}

	if resolved, err := ch.ResolveNumber(ctx, phone.Normalize(registeredPhone)); err != nil {
		r.log.Warn("Registered phone resolution failed", "err", err)
	} else {
		cands.SerializedIDs = append(cands.SerializedIDs, resolved.ID)
		cands.Numbers = append(cands.Numbers, resolved.Number)
	}

	return cands, nil
}
