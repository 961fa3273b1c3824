package domain

import "time"

type MatchStatus string

const (
	MatchActive MatchStatus = "active"
	MatchEnded  MatchStatus = "ended"
)

// Match is a mutual-interest relationship between exactly two identities,
// optionally scoped to one listing. The two participants are always distinct.
// Unmatching flips the status to ended; the record and its thread survive.
type Match struct {
	ID        string      `json:"id"`
	Users     [2]Identity `json:"users"`
	ListingID *string     `json:"property_id,omitempty"`
	Status    MatchStatus `json:"status"`
	CreatedAt time.Time   `json:"created"`
}

// HasParticipant reports whether id is one of the two participants.
func (m Match) HasParticipant(id string) bool {
	return m.Users[0].ID == id || m.Users[1].ID == id
}

// Other returns the participant that is not id. The second return is false
// when id is not a participant at all.
func (m Match) Other(id string) (Identity, bool) {
	switch id {
	case m.Users[0].ID:
		return m.Users[1], true
	case m.Users[1].ID:
		return m.Users[0], true
	}
	return Identity{}, false
}

type CreateMatchRequest struct {
	UserA     IdentityRef `json:"user_a" validate:"required"`
	UserB     IdentityRef `json:"user_b" validate:"required"`
	ListingID *string     `json:"property_id"`
}
