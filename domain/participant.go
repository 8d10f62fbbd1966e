package domain

import (
	"strings"

	"grouplink/domain/phone"
)

// opaqueServer is the identifier suffix of entries that cannot be addressed
// by phone number. Lists made only of these carry no usable contact identity.
const opaqueServer = "@lid"

// Identity is one addressable form of a messaging account.
type Identity struct {
	// ID is the platform-serialized identifier, e.g. "919876543210@c.us".
	ID string
	// Number is the bare user part of the identifier.
	Number string
}

// Participant is one member of a group snapshot. Immutable once included.
type Participant struct {
	ID           string
	RawNumber    string
	IsAdmin      bool
	IsSuperAdmin bool
}

// Addressable reports whether the participant carries a resolvable contact
// identifier rather than an opaque one.
func (p Participant) Addressable() bool {
	return p.ID != "" && !strings.HasSuffix(p.ID, opaqueServer)
}

// GroupSnapshot is the verified result of a successful invite resolution.
// It is created per lookup and never persisted by this core.
type GroupSnapshot struct {
	GroupID             string
	DisplayName         string
	Participants        []Participant
	ResolvedViaFastPath bool
}

// MemberCount returns the number of participants in the snapshot.
func (g GroupSnapshot) MemberCount() int {
	return len(g.Participants)
}

// IdentityCandidates is the set of identifier forms that may address the
// authenticated account inside a membership list.
type IdentityCandidates struct {
	// SerializedIDs are exact-match identifiers (session id, resolved ids).
	SerializedIDs []string
	// Numbers are bare contact numbers compared with suffix tolerance.
	Numbers []string
}

// FindSelf returns the first participant addressed by any candidate, either
// by exact serialized id or by fuzzy number match. The fuzziness is required
// because the same physical account appears under different encodings
// depending on how the group's membership list was populated.
func FindSelf(participants []Participant, cands IdentityCandidates) (Participant, bool) {
	ids := make(map[string]struct{}, len(cands.SerializedIDs))
	for _, id := range cands.SerializedIDs {
		if id != "" {
			ids[id] = struct{}{}
		}
	}

	for _, p := range participants {
		if _, ok := ids[p.ID]; ok {
			return p, true
		}
		for _, n := range cands.Numbers {
			if phone.Match(n, p.RawNumber) {
				return p, true
			}
		}
	}
	return Participant{}, false
}
