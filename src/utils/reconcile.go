package utils

import "nextgame/src/types"

// ReconcileAttendance makes sure every current roster id has an attendance
// entry. Missing ids are added as pending; existing entries are never touched,
// so a player removed from the roster keeps their recorded answer. Pure: the
// inputs are not mutated, and feeding the result back in reports no change.
func ReconcileAttendance(roster map[string]string, attendance map[string]types.Answer) (map[string]types.Answer, bool) {
	merged := make(map[string]types.Answer, len(roster)+len(attendance))
	for id, answer := range attendance {
		merged[id] = answer
	}
	changed := false
	for id := range roster {
		if _, ok := merged[id]; !ok {
			merged[id] = types.ANSWER_PENDING
			changed = true
		}
	}
	return merged, changed
}
