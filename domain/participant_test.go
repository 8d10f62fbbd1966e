package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindSelf(t *testing.T) {
	participants := []Participant{
		{ID: "111@c.us", RawNumber: "111"},
		{ID: "919876543210@c.us", RawNumber: "919876543210", IsAdmin: true},
		{ID: "222@c.us", RawNumber: "222"},
	}

	t.Run("should match on serialized id", func(t *testing.T) {
		req := require.New(t)
		p, ok := FindSelf(participants, IdentityCandidates{
			SerializedIDs: []string{"919876543210@c.us"},
		})
		req.True(ok)
		req.True(p.IsAdmin)
	})

	t.Run("should match bare number with country code tolerance", func(t *testing.T) {
		req := require.New(t)
		p, ok := FindSelf(participants, IdentityCandidates{
			Numbers: []string{"9876543210"},
		})
		req.True(ok)
		req.Equal("919876543210@c.us", p.ID)
	})

	t.Run("should return none when no candidate is in the list", func(t *testing.T) {
		_, ok := FindSelf(participants, IdentityCandidates{
			SerializedIDs: []string{"333@c.us"},
			Numbers:       []string{"333"},
		})
		require.False(t, ok)
	})

	t.Run("should return none on empty candidates even for a non-empty list", func(t *testing.T) {
		_, ok := FindSelf(participants, IdentityCandidates{})
		require.False(t, ok)
	})

	t.Run("should ignore empty candidate identifiers", func(t *testing.T) {
		_, ok := FindSelf(participants, IdentityCandidates{
			SerializedIDs: []string{""},
			Numbers:       []string{""},
		})
		require.False(t, ok)
	})
}

func TestParticipantAddressable(t *testing.T) {
	tests := []struct {
		name string
		p    Participant
		want bool
	}{
		{"Contact identifier", Participant{ID: "123@c.us"}, true},
		{"Opaque identifier", Participant{ID: "987654@lid"}, false},
		{"Empty identifier", Participant{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Addressable(); got != tt.want {
				t.Errorf("Addressable() = %v; want %v", got, tt.want)
			}
		})
	}
}
