package models

import "nextgame/src/types"

// Game is the ephemeral sign-up sheet for one upcoming game, keyed by an
// opaque game key in the games collection. It carries no back-reference to
// its team; ownership is whatever Team.NextGame currently points at. The
// document may expire out of the store at any time.
type Game struct {
	Description string                  `json:"description,omitempty"`
	Attendance  map[string]types.Answer `json:"attendance,omitempty"`
	Guests      []string                `json:"guests,omitempty"`
	Comments    []string                `json:"comments,omitempty"`
}

func (g *Game) PlayingCount() int {
	count := 0
	for _, answer := range g.Attendance {
		if answer == types.ANSWER_PLAYING {
			count++
		}
	}
	return count
}
