package common

import (
	"context"
	"log"
	"strings"

	"nextgame/src/models"
	"nextgame/src/store"
)

// SweepStaleGames walks every team and clears next_game pointers whose game
// document has expired or was deleted. Games expire natively in the store;
// this keeps the team side from referencing them forever. Individual failures
// skip the team and the sweep carries on.
func SweepStaleGames(ctx context.Context) {
	keys, err := store.ScanKeys(ctx, store.TeamsCollection)
	if err != nil {
		log.Printf("[sweep] Error scanning teams: %s\n", err.Error())
		return
	}
	cleared := 0
	for _, k := range keys {
		teamKey := strings.TrimPrefix(k, store.TeamsCollection+":")
		var team models.Team
		found, err := store.Get(ctx, store.TeamsCollection, teamKey, &team)
		if err != nil || !found {
			continue
		}
		if team.NextGame == "" {
			continue
		}
		var game models.Game
		gameFound, err := store.Get(ctx, store.GamesCollection, team.NextGame, &game)
		if err != nil || gameFound {
			continue
		}
		team.NextGame = ""
		if err := store.Put(ctx, store.TeamsCollection, teamKey, &team, nil); err != nil {
			log.Printf("[sweep] Failed to clear pointer for team %s: %s\n", teamKey, err.Error())
			continue
		}
		cleared++
	}
	if cleared > 0 {
		log.Printf("[sweep] Cleared %d stale game pointer(s)\n", cleared)
	}
}
