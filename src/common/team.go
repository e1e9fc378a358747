package common

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"nextgame/src/models"
	"nextgame/src/store"
	"nextgame/src/types"
	"nextgame/src/utils"
)

// CreateTeam persists an empty-roster team and returns its key and admin
// secret. The secret is only ever handed out here; it cannot be re-displayed.
func CreateTeam(ctx context.Context, name string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("%w: team name is required", types.ErrInvalidInput)
	}
	key, err := utils.NewToken()
	if err != nil {
		return "", "", err
	}
	secret, err := utils.NewToken()
	if err != nil {
		return "", "", err
	}
	team := models.Team{
		Name:   name,
		Secret: secret,
		Roster: map[string]string{},
	}
	if err := store.Put(ctx, store.TeamsCollection, key, &team, nil); err != nil {
		return "", "", err
	}
	return key, secret, nil
}

func GetTeam(ctx context.Context, key string) (*models.Team, error) {
	var team models.Team
	found, err := store.Get(ctx, store.TeamsCollection, key, &team)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, types.ErrNotFound
	}
	return &team, nil
}

// AuthorizeTeam loads a team and checks the supplied admin secret. Callers
// must report ErrNotFound and ErrUnauthorized identically so team keys cannot
// be probed.
func AuthorizeTeam(ctx context.Context, key, secret string) (*models.Team, error) {
	team, err := GetTeam(ctx, key)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(team.Secret), []byte(secret)) != 1 {
		return nil, types.ErrUnauthorized
	}
	return team, nil
}

// AddPlayers splits a comma-separated list of names, generates a fresh player
// id for each and persists the roster. Returns the new ids in input order.
func AddPlayers(ctx context.Context, key string, team *models.Team, namesCsv string) ([]string, error) {
	names := SplitNames(namesCsv)
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no player names given", types.ErrInvalidInput)
	}
	if team.Roster == nil {
		team.Roster = map[string]string{}
	}
	ids := make([]string, 0, len(names))
	for _, name := range names {
		id, err := utils.NewToken()
		if err != nil {
			return nil, err
		}
		team.Roster[id] = name
		ids = append(ids, id)
	}
	if err := store.Put(ctx, store.TeamsCollection, key, team, nil); err != nil {
		return nil, err
	}
	return ids, nil
}

// RemovePlayer drops a player from the roster. Removing an absent id is a
// no-op, not an error. Any answer the player already gave on the open game
// stays in that game's attendance record.
func RemovePlayer(ctx context.Context, key string, team *models.Team, playerID string) error {
	if _, ok := team.Roster[playerID]; !ok {
		return nil
	}
	delete(team.Roster, playerID)
	return store.Put(ctx, store.TeamsCollection, key, team, nil)
}

// UpdateSettings overwrites display fields and/or the schedule. A schedule
// that fails validation rejects the whole update and the stored team is left
// untouched. Sending empty cron and tz clears the schedule.
func UpdateSettings(ctx context.Context, key string, team *models.Team, body *types.UpdateSettingsRequestBody) error {
	if body.Cron != nil || body.Timezone != nil {
		if body.Cron == nil || body.Timezone == nil {
			return fmt.Errorf("%w: cron and tz must be updated together", types.ErrInvalidInput)
		}
		if *body.Cron == "" && *body.Timezone == "" {
			team.Schedule = nil
		} else {
			if err := utils.ValidateSchedule(*body.Cron, *body.Timezone); err != nil {
				return err
			}
			team.Schedule = &types.Schedule{Cron: *body.Cron, Timezone: *body.Timezone}
		}
	}
	if body.Location != nil || body.TimeInfo != nil || body.Weekday != nil {
		settings := team.Settings
		if settings == nil {
			settings = &types.TeamSettings{}
		}
		if body.Location != nil {
			settings.Location = *body.Location
		}
		if body.TimeInfo != nil {
			settings.TimeInfo = *body.TimeInfo
		}
		if body.Weekday != nil {
			if *body.Weekday < 1 || *body.Weekday > 7 {
				return fmt.Errorf("%w: weekday must be between 1 and 7", types.ErrInvalidInput)
			}
			settings.Weekday = *body.Weekday
		}
		team.Settings = settings
	}
	return store.Put(ctx, store.TeamsCollection, key, team, nil)
}

// SplitNames splits a comma-separated list, trimming whitespace and dropping
// empty parts.
func SplitNames(csv string) []string {
	var names []string
	for _, part := range strings.Split(csv, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
