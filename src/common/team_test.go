package common

import (
	"context"
	"testing"

	"nextgame/src/lib"
	"nextgame/src/models"
	"nextgame/src/types"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newStoreMock() redismock.ClientMock {
	db, mock := redismock.NewClientMock()
	lib.NewRedisClient(db)
	return mock
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateTeam(t *testing.T) {
	mock := newStoreMock()
	mock.Regexp().ExpectSet(`teams:[0-9a-f]{20}`, `.*`, redis.KeepTTL).SetVal("OK")

	key, secret, err := CreateTeam(context.Background(), "  Lions  ")
	assert.Nil(t, err)
	assert.Regexp(t, "^[0-9a-f]{20}$", key)
	assert.Regexp(t, "^[0-9a-f]{20}$", secret)
	assert.NotEqual(t, key, secret)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCreateTeamEmptyName(t *testing.T) {
	mock := newStoreMock()

	_, _, err := CreateTeam(context.Background(), "   ")
	assert.ErrorIs(t, err, types.ErrInvalidInput)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestGetTeamNotFound(t *testing.T) {
	mock := newStoreMock()
	mock.ExpectGet("teams:missing").RedisNil()

	_, err := GetTeam(context.Background(), "missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestAuthorizeTeam(t *testing.T) {
	mock := newStoreMock()
	mock.ExpectGet("teams:t1").SetVal(`{"name":"Lions","secret":"topsecret"}`)

	team, err := AuthorizeTeam(context.Background(), "t1", "topsecret")
	assert.Nil(t, err)
	assert.Equal(t, "Lions", team.Name)
}

func TestAuthorizeTeamWrongSecret(t *testing.T) {
	mock := newStoreMock()
	mock.ExpectGet("teams:t1").SetVal(`{"name":"Lions","secret":"topsecret"}`)

	_, err := AuthorizeTeam(context.Background(), "t1", "wrong")
	assert.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestAuthorizeTeamUnknownKey(t *testing.T) {
	mock := newStoreMock()
	mock.ExpectGet("teams:t1").RedisNil()

	_, err := AuthorizeTeam(context.Background(), "t1", "topsecret")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestAddPlayers(t *testing.T) {
	mock := newStoreMock()
	mock.Regexp().ExpectSet(`teams:t1`, `.*`, redis.KeepTTL).SetVal("OK")

	team := &models.Team{Name: "Lions", Secret: "s", Roster: map[string]string{}}
	ids, err := AddPlayers(context.Background(), "t1", team, "Alice, Bob")
	assert.Nil(t, err)
	assert.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
	assert.Equal(t, "Alice", team.Roster[ids[0]])
	assert.Equal(t, "Bob", team.Roster[ids[1]])
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestAddPlayersNoNames(t *testing.T) {
	mock := newStoreMock()

	team := &models.Team{Name: "Lions", Secret: "s"}
	_, err := AddPlayers(context.Background(), "t1", team, " ,  , ")
	assert.ErrorIs(t, err, types.ErrInvalidInput)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestRemovePlayer(t *testing.T) {
	mock := newStoreMock()
	mock.ExpectSet("teams:t1", `{"name":"Lions","secret":"s"}`, redis.KeepTTL).SetVal("OK")

	team := &models.Team{Name: "Lions", Secret: "s", Roster: map[string]string{"a1": "Alice"}}
	err := RemovePlayer(context.Background(), "t1", team, "a1")
	assert.Nil(t, err)
	assert.Empty(t, team.Roster)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestRemovePlayerAbsentIsNoop(t *testing.T) {
	mock := newStoreMock()

	team := &models.Team{Name: "Lions", Secret: "s", Roster: map[string]string{"a1": "Alice"}}
	err := RemovePlayer(context.Background(), "t1", team, "zz")
	assert.Nil(t, err)
	assert.Len(t, team.Roster, 1)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestUpdateSettingsSetSchedule(t *testing.T) {
	mock := newStoreMock()
	mock.ExpectSet("teams:t1", `{"name":"Lions","secret":"s","schedule":{"cron":"0 18 * * 3","tz":"Europe/Berlin"}}`, redis.KeepTTL).SetVal("OK")

	team := &models.Team{Name: "Lions", Secret: "s"}
	body := &types.UpdateSettingsRequestBody{Cron: strPtr("0 18 * * 3"), Timezone: strPtr("Europe/Berlin")}
	err := UpdateSettings(context.Background(), "t1", team, body)
	assert.Nil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestUpdateSettingsClearSchedule(t *testing.T) {
	mock := newStoreMock()
	mock.ExpectSet("teams:t1", `{"name":"Lions","secret":"s"}`, redis.KeepTTL).SetVal("OK")

	team := &models.Team{
		Name:     "Lions",
		Secret:   "s",
		Schedule: &types.Schedule{Cron: "0 18 * * 3", Timezone: "Europe/Berlin"},
	}
	body := &types.UpdateSettingsRequestBody{Cron: strPtr(""), Timezone: strPtr("")}
	err := UpdateSettings(context.Background(), "t1", team, body)
	assert.Nil(t, err)
	assert.Nil(t, team.Schedule)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestUpdateSettingsInvalidCronLeavesTeamUntouched(t *testing.T) {
	mock := newStoreMock()

	old := &types.Schedule{Cron: "0 18 * * 3", Timezone: "Europe/Berlin"}
	team := &models.Team{Name: "Lions", Secret: "s", Schedule: old}
	body := &types.UpdateSettingsRequestBody{Cron: strPtr("not-a-cron"), Timezone: strPtr("Europe/Berlin")}
	err := UpdateSettings(context.Background(), "t1", team, body)
	assert.ErrorIs(t, err, types.ErrInvalidInput)
	assert.Equal(t, old, team.Schedule)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestUpdateSettingsCronWithoutTimezone(t *testing.T) {
	mock := newStoreMock()

	team := &models.Team{Name: "Lions", Secret: "s"}
	body := &types.UpdateSettingsRequestBody{Cron: strPtr("0 18 * * 3")}
	err := UpdateSettings(context.Background(), "t1", team, body)
	assert.ErrorIs(t, err, types.ErrInvalidInput)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestUpdateSettingsDisplayFields(t *testing.T) {
	mock := newStoreMock()
	mock.ExpectSet("teams:t1", `{"name":"Lions","secret":"s","settings":{"location":"Court 5","weekday":3}}`, redis.KeepTTL).SetVal("OK")

	team := &models.Team{Name: "Lions", Secret: "s"}
	body := &types.UpdateSettingsRequestBody{Location: strPtr("Court 5"), Weekday: intPtr(3)}
	err := UpdateSettings(context.Background(), "t1", team, body)
	assert.Nil(t, err)
	assert.Equal(t, "Court 5", team.Settings.Location)
	assert.Equal(t, 3, team.Settings.Weekday)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestUpdateSettingsWeekdayOutOfRange(t *testing.T) {
	mock := newStoreMock()

	team := &models.Team{Name: "Lions", Secret: "s"}
	body := &types.UpdateSettingsRequestBody{Weekday: intPtr(9)}
	err := UpdateSettings(context.Background(), "t1", team, body)
	assert.ErrorIs(t, err, types.ErrInvalidInput)
	assert.Nil(t, team.Settings)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestSplitNames(t *testing.T) {
	assert.Equal(t, []string{"Alice", "Bob"}, SplitNames(" Alice , Bob "))
	assert.Equal(t, []string{"Alice"}, SplitNames("Alice"))
	assert.Nil(t, SplitNames(" , ,"))
}
