//go:generate go run go.uber.org/mock/mockgen -source=channel.go -destination=../mocks/mock_channel.go -package=mocks
package domain

import "context"

// Channel is the port to one paired automation-channel instance. The
// production adapter speaks gRPC to a browser-automation sidecar; tests
// inject a mock. At most one channel instance exists system-wide and the
// session service is its sole owner.
type Channel interface {
	// Self returns the identity of the currently authenticated account.
	Self(ctx context.Context) (Identity, error)
	// ResolveInvite resolves a bare invite code to group metadata. The
	// participant list may be empty or opaque depending on the source.
	ResolveInvite(ctx context.Context, code string) (InviteInfo, error)
	// Group fetches the full community record by id.
	Group(ctx context.Context, groupID string) (GroupRecord, error)
	// SyncHistory requests a minimal history fetch to force the channel
	// to hydrate group metadata.
	SyncHistory(ctx context.Context, groupID string, limit int) error
	// ResolveNumber resolves a bare phone number to a channel identity.
	ResolveNumber(ctx context.Context, number string) (Identity, error)
	// Events delivers lifecycle events until the channel goes away.
	// The channel closes the stream on terminal disconnection.
	Events() <-chan ChannelEvent
	// Logout signs the account out of the channel.
	Logout(ctx context.Context) error
	// Close tears the channel instance down and releases its resources.
	Close(ctx context.Context) error
}

// InviteInfo is the metadata behind a resolved invite code.
type InviteInfo struct {
	GroupID      string
	Subject      string
	Participants []Participant
}

// GroupRecord is a full community record fetched by id.
type GroupRecord struct {
	ID           string
	Name         string
	IsGroup      bool
	Participants []Participant
}

// ChannelEvent is a lifecycle event emitted by the automation channel.
// The session service feeds these through its transition table.
type ChannelEvent interface {
	isChannelEvent()
}

// PairingCodeProduced carries the raw scannable pairing code.
type PairingCodeProduced struct {
	Code string
}

// AuthenticatedEvent signals a successful pairing or a restored session.
type AuthenticatedEvent struct{}

// ReadyEvent signals the channel is fully operational.
type ReadyEvent struct {
	Self Identity
}

// AuthFailureEvent signals the stored session could not be restored.
type AuthFailureEvent struct {
	Reason string
}

// DisconnectedEvent signals the channel dropped.
type DisconnectedEvent struct {
	Reason string
}

func (PairingCodeProduced) isChannelEvent() {}
func (AuthenticatedEvent) isChannelEvent()  {}
func (ReadyEvent) isChannelEvent()          {}
func (AuthFailureEvent) isChannelEvent()    {}
func (DisconnectedEvent) isChannelEvent()   {}
