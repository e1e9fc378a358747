package common

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"nextgame/src/models"
	"nextgame/src/store"
	"nextgame/src/types"
	"nextgame/src/utils"
)

// NewGameForRoster builds a fresh sign-up sheet with every current roster
// member seeded as pending. The snapshot is taken here, at creation time;
// later roster additions reach the game through reconciliation on read.
func NewGameForRoster(roster map[string]string, description string) models.Game {
	attendance := make(map[string]types.Answer, len(roster))
	for id := range roster {
		attendance[id] = types.ANSWER_PENDING
	}
	return models.Game{
		Description: description,
		Attendance:  attendance,
	}
}

// gameExpiry derives the expiry instant for a new game from the team's
// schedule. No schedule, or one that no longer evaluates, means no expiry;
// that is a soft failure and never blocks opening the game.
func gameExpiry(team *models.Team, now time.Time) *time.Time {
	if team.Schedule == nil {
		return nil
	}
	next, err := utils.NextTrigger(team.Schedule.Cron, team.Schedule.Timezone, now)
	if err != nil {
		log.Printf("Schedule for team %q is unusable, game will not expire: %s\n", team.Name, err.Error())
		return nil
	}
	return &next
}

// OpenGame creates the game document and then points the team at it, in that
// order. A failed game write aborts before the team is touched; a failed team
// write after the game landed leaves an orphaned game, which is harmless and
// still reported as a failure.
func OpenGame(ctx context.Context, teamKey string, team *models.Team, description string) (string, error) {
	gameKey, err := utils.NewToken()
	if err != nil {
		return "", err
	}
	game := NewGameForRoster(team.Roster, description)
	expiresAt := gameExpiry(team, time.Now())
	if err := store.Put(ctx, store.GamesCollection, gameKey, &game, expiresAt); err != nil {
		return "", err
	}
	team.NextGame = gameKey
	if err := store.Put(ctx, store.TeamsCollection, teamKey, team, nil); err != nil {
		return "", err
	}
	return gameKey, nil
}

// loadOpenGame fetches the game the team currently points at. No pointer and
// a stale pointer both come back as ErrGameMissing: either way there is no
// game to act on.
func loadOpenGame(ctx context.Context, team *models.Team) (*models.Game, error) {
	if team.NextGame == "" {
		return nil, types.ErrGameMissing
	}
	var game models.Game
	found, err := store.Get(ctx, store.GamesCollection, team.NextGame, &game)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, types.ErrGameMissing
	}
	return &game, nil
}

// RecordAttendance sets a player's answer on the open game. The id does not
// have to pre-exist in the attendance map, or even on the roster.
func RecordAttendance(ctx context.Context, team *models.Team, playerID string, answer types.Answer) error {
	game, err := loadOpenGame(ctx, team)
	if err != nil {
		return err
	}
	if game.Attendance == nil {
		game.Attendance = map[string]types.Answer{}
	}
	game.Attendance[playerID] = answer
	return store.Put(ctx, store.GamesCollection, team.NextGame, game, nil)
}

// ResetGame deletes the open game best-effort and clears the pointer. A
// failed delete is logged and swallowed; the document will expire on its own
// or be ignored, and the pointer is cleared regardless.
func ResetGame(ctx context.Context, teamKey string, team *models.Team) error {
	if team.NextGame != "" {
		if err := store.Delete(ctx, store.GamesCollection, team.NextGame); err != nil {
			log.Printf("Failed to delete game %s, leaving it to expire: %s\n", team.NextGame, err.Error())
		}
	}
	team.NextGame = ""
	return store.Put(ctx, store.TeamsCollection, teamKey, team, nil)
}

// AddGuests appends each trimmed, comma-separated name as its own guest
// entry. Order is kept and duplicate names are distinct guests.
func AddGuests(ctx context.Context, team *models.Team, namesCsv string) error {
	names := SplitNames(namesCsv)
	if len(names) == 0 {
		return fmt.Errorf("%w: no guest names given", types.ErrInvalidInput)
	}
	game, err := loadOpenGame(ctx, team)
	if err != nil {
		return err
	}
	game.Guests = append(game.Guests, names...)
	return store.Put(ctx, store.GamesCollection, team.NextGame, game, nil)
}

// RemoveGuest drops every guest entry matching name exactly. Guests have no
// identity beyond their name, so duplicates all go together.
func RemoveGuest(ctx context.Context, team *models.Team, name string) error {
	game, err := loadOpenGame(ctx, team)
	if err != nil {
		return err
	}
	kept := make([]string, 0, len(game.Guests))
	for _, guest := range game.Guests {
		if guest != name {
			kept = append(kept, guest)
		}
	}
	game.Guests = kept
	return store.Put(ctx, store.GamesCollection, team.NextGame, game, nil)
}

func AddComment(ctx context.Context, team *models.Team, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: comment text is required", types.ErrInvalidInput)
	}
	game, err := loadOpenGame(ctx, team)
	if err != nil {
		return err
	}
	game.Comments = append(game.Comments, text)
	return store.Put(ctx, store.GamesCollection, team.NextGame, game, nil)
}

// BuildTeamView assembles the sign-up page data. A pointer to a missing game
// renders as "no game open" and the stale pointer is cleared best-effort.
// When a game is present the attendance map is reconciled against the current
// roster and persisted only if that added entries.
func BuildTeamView(ctx context.Context, teamKey string, team *models.Team) (*types.TeamView, error) {
	view := &types.TeamView{
		Name:     team.Name,
		Settings: team.Settings,
	}
	if team.NextGame == "" {
		return view, nil
	}
	var game models.Game
	found, err := store.Get(ctx, store.GamesCollection, team.NextGame, &game)
	if err != nil {
		return nil, err
	}
	if !found {
		stale := team.NextGame
		team.NextGame = ""
		if err := store.Put(ctx, store.TeamsCollection, teamKey, team, nil); err != nil {
			log.Printf("Failed to clear stale game %s for team %s: %s\n", stale, teamKey, err.Error())
		}
		return view, nil
	}
	merged, changed := utils.ReconcileAttendance(team.Roster, game.Attendance)
	game.Attendance = merged
	if changed {
		if err := store.Put(ctx, store.GamesCollection, team.NextGame, &game, nil); err != nil {
			return nil, err
		}
	}
	gv := &types.GameView{
		Description: game.Description,
		Guests:      game.Guests,
		Comments:    game.Comments,
		Attendance:  make([]types.AttendanceEntry, 0, len(game.Attendance)),
	}
	for id, answer := range game.Attendance {
		name, ok := team.PlayerName(id)
		if !ok {
			name = "Unknown player"
		}
		gv.Attendance = append(gv.Attendance, types.AttendanceEntry{
			PlayerID: id,
			Name:     name,
			Answer:   answer,
		})
	}
	sort.Slice(gv.Attendance, func(i, j int) bool {
		if gv.Attendance[i].Name != gv.Attendance[j].Name {
			return gv.Attendance[i].Name < gv.Attendance[j].Name
		}
		return gv.Attendance[i].PlayerID < gv.Attendance[j].PlayerID
	})
	gv.Summary = game.PlayingCount() + len(game.Guests)
	view.Open = true
	view.Game = gv
	return view, nil
}
