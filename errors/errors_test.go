package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapToGRPCError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
	}{
		{"Invalid request", ErrInvalidRequest, codes.InvalidArgument},
		{"Wrapped invalid request keeps its code", fmt.Errorf("%w: empty invite code", ErrInvalidRequest), codes.InvalidArgument},
		{"Channel not ready", ErrChannelNotReady, codes.FailedPrecondition},
		{"Resolution failed", ErrResolutionFailed, codes.Unavailable},
		{"Wrapped resolution failure keeps its code", fmt.Errorf("%w: last attempt: boom", ErrResolutionFailed), codes.Unavailable},
		{"Not a group", ErrNotAGroup, codes.InvalidArgument},
		{"Not a member", ErrNotAMember, codes.PermissionDenied},
		{"Not an admin", ErrNotAnAdmin, codes.PermissionDenied},
		{"Identity mismatch", ErrIdentityMismatch, codes.FailedPrecondition},
		{"User not found", ErrUserNotFound, codes.NotFound},
		{"Unknown error", fmt.Errorf("boom"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			st, ok := status.FromError(MapToGRPCError(tt.err))
			req.True(ok)
			req.Equal(tt.wantCode, st.Code())
			req.NotEmpty(st.Message())
		})
	}
}

// The caller experience depends on distinct messages per terminal failure;
// collapsing them into a generic error would break remediation guidance.
func TestMapToGRPCError_DistinctMessages(t *testing.T) {
	req := require.New(t)
	terminal := []error{ErrNotAGroup, ErrNotAMember, ErrNotAnAdmin, ErrIdentityMismatch, ErrChannelNotReady, ErrResolutionFailed, ErrInvalidRequest}

	seen := make(map[string]struct{}, len(terminal))
	for _, err := range terminal {
		st, _ := status.FromError(MapToGRPCError(err))
		_, dup := seen[st.Message()]
		req.False(dup, "message %q reused", st.Message())
		seen[st.Message()] = struct{}{}
	}
}

func TestMapToGRPCError_Nil(t *testing.T) {
	require.NoError(t, MapToGRPCError(nil))
}
