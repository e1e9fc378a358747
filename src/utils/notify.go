package utils

import (
	"fmt"
	"log"

	"nextgame/src/config"
	"nextgame/src/lib"

	"github.com/gosimple/slug"
)

// NotifyGameOpen pushes a "game-open" event with the public sign-up link.
// Callers run it in a goroutine; delivery failures are logged and never
// surfaced to the request that opened the game.
func NotifyGameOpen(teamKey, teamName string) {
	client := lib.GetPusherClient()
	channel := fmt.Sprintf("team-%s", slug.Make(teamName))
	link := fmt.Sprintf("%s/team/%s", config.AppHost(), teamKey)
	if err := client.Trigger(channel, "game-open", map[string]string{
		"team": teamName,
		"link": link,
	}); err != nil {
		log.Printf("[pusher] Error sending game-open for team %s: %s\n", teamKey, err.Error())
	}
}
