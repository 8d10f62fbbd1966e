package domain

import "testing"

func TestSessionState_Restartable(t *testing.T) {
	tests := []struct {
		state SessionState
		want  bool
	}{
		{StateIdle, true},
		{StateDisconnected, true},
		{SessionState(""), true},
		{StateInitializing, false},
		{StateQRReady, false},
		{StateAuthenticated, false},
		{StateReady, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			if got := tt.state.Restartable(); got != tt.want {
				t.Errorf("Restartable(%q) = %t; want %t", tt.state, got, tt.want)
			}
		})
	}
}
