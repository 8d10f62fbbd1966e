// Package errors defines the failure taxonomy of the connection core and its
// mapping onto the gRPC surface. Each terminal failure must stay
// distinguishable for callers: "join the group", "re-scan with the right
// phone" and "try again shortly" are different remediations.
package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrInvalidRequest means the command failed validation. Not retryable;
	// the caller must fix the request.
	ErrInvalidRequest = fmt.Errorf("invalid request")
	// ErrChannelNotReady means the session is not in READY state. Retryable
	// once pairing completes.
	ErrChannelNotReady = fmt.Errorf("channel not ready")
	// ErrResolutionFailed means invite resolution exhausted its retries.
	// Wraps the last underlying channel error.
	ErrResolutionFailed = fmt.Errorf("invite resolution failed")
	// ErrNotAGroup means the invite points to a private chat.
	ErrNotAGroup = fmt.Errorf("not a group")
	// ErrNotAMember means the authenticated account is not in the group.
	ErrNotAMember = fmt.Errorf("not a member")
	// ErrNotAnAdmin means the account is a member but holds no admin rights.
	ErrNotAnAdmin = fmt.Errorf("not an admin")
	// ErrIdentityMismatch means the paired account is not the phone
	// registered to the platform user. Requires re-pairing.
	ErrIdentityMismatch = fmt.Errorf("identity mismatch")

	// ErrChannelTransient marks recoverable automation failures
	// (evaluation or context-lifecycle errors) retried locally.
	ErrChannelTransient = fmt.Errorf("transient channel failure")

	// ErrUserNotFound means the platform user record does not exist.
	ErrUserNotFound = fmt.Errorf("user not found")

	// Sidecar lifecycle failures surfaced by the launcher.
	ErrSidecarNotFound    = fmt.Errorf("channel sidecar binary not found")
	ErrSidecarStartFailed = fmt.Errorf("channel sidecar failed to start")
	ErrSidecarUnavailable = fmt.Errorf("channel sidecar not responding")
)

// MapToGRPCError converts a core error into a gRPC status with a distinct,
// actionable message per failure kind. Unknown errors become Internal.
func MapToGRPCError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidRequest):
		return status.Error(codes.InvalidArgument,
			"the invite reference is missing or not a valid link")
	case errors.Is(err, ErrChannelNotReady):
		return status.Error(codes.FailedPrecondition,
			"the messaging session is not connected yet, finish pairing and retry")
	case errors.Is(err, ErrResolutionFailed):
		return status.Error(codes.Unavailable,
			"could not resolve the invite link, try again shortly")
	case errors.Is(err, ErrNotAGroup):
		return status.Error(codes.InvalidArgument,
			"the link points to a private chat, not a group")
	case errors.Is(err, ErrNotAMember):
		return status.Error(codes.PermissionDenied,
			"you are not a member of this group; join it or scan with the correct phone")
	case errors.Is(err, ErrNotAnAdmin):
		return status.Error(codes.PermissionDenied,
			"you are not an admin of this group")
	case errors.Is(err, ErrIdentityMismatch):
		return status.Error(codes.FailedPrecondition,
			"the paired account does not match your registered phone, re-pair with the correct account")
	case errors.Is(err, ErrUserNotFound):
		return status.Error(codes.NotFound, "user not found")
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
