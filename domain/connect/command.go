// Package connect defines the commands accepted by the connection core.
package connect

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ResolveInviteCommand asks for a verified snapshot of the group behind an
// invite link, on behalf of the platform user who triggered the lookup.
type ResolveInviteCommand struct {
	UserID    string `validate:"required"`
	InviteRef string `validate:"required"`
}

// Validate checks business-level presence rules before any channel call.
func (c ResolveInviteCommand) Validate() error {
	return validate.Struct(c)
}

// StartSessionCommand begins or continues pairing for a platform user.
type StartSessionCommand struct {
	UserID string `validate:"required"`
}

// Validate checks business-level presence rules.
func (c StartSessionCommand) Validate() error {
	return validate.Struct(c)
}
