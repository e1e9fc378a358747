package models

import "nextgame/src/types"

// Team is the persistent roster document, keyed by an opaque team key in the
// teams collection. The secret is generated once at creation and gates every
// admin operation.
type Team struct {
	Name     string              `json:"name"`
	Secret   string              `json:"secret"`
	Roster   map[string]string   `json:"roster,omitempty"`
	NextGame string              `json:"next_game,omitempty"`
	Schedule *types.Schedule     `json:"schedule,omitempty"`
	Settings *types.TeamSettings `json:"settings,omitempty"`
}

// PlayerName resolves a roster id to its display name. Ids present in an old
// game's attendance but no longer on the roster resolve to false.
func (t *Team) PlayerName(id string) (string, bool) {
	name, ok := t.Roster[id]
	return name, ok
}
