// Package domain contains core concepts of the group connection system.
// No runtime, network, or UI logic should be added here.
package domain

// SessionState is the observable phase of the single automation-channel session.
type SessionState string

const (
	// StateIdle means no session exists; a connect request may create one.
	StateIdle SessionState = "IDLE"
	// StateInitializing means the channel sidecar is booting.
	StateInitializing SessionState = "INITIALIZING"
	// StateQRReady means a pairing artifact is available for scanning.
	StateQRReady SessionState = "QR_READY"
	// StateAuthenticated means the account is paired but browser modules
	// are not loaded yet; resolution calls must still wait for READY.
	StateAuthenticated SessionState = "AUTHENTICATED"
	// StateReady means the channel is fully operational.
	StateReady SessionState = "READY"
	// StateDisconnected means the channel dropped or failed to authenticate.
	StateDisconnected SessionState = "DISCONNECTED"
)

// Restartable reports whether a new session may be created from this state.
// IDLE and DISCONNECTED are terminal but restartable; every other state means
// a session is live and a concurrent start must observe it instead.
func (s SessionState) Restartable() bool {
	return s == StateIdle || s == StateDisconnected || s == ""
}

// Session is the single process-wide connection value. It is owned and
// mutated exclusively by the session service; resolver code only ever sees
// the channel handle and self identity it exposes.
type Session struct {
	ID              string
	OwnerUserID     string
	State           SessionState
	PairingArtifact string // image data URL, present only while QR_READY
	Self            Identity
}

// SessionStatus is the poll-facing projection of a session.
type SessionStatus struct {
	State           SessionState
	PairingArtifact string
}
