package common

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestSweepClearsOnlyStalePointers(t *testing.T) {
	mock := newStoreMock()
	mock.ExpectScan(0, "teams:*", 100).SetVal([]string{"teams:t1", "teams:t2", "teams:t3"}, 0)
	// t1 points at an expired game, gets cleared
	mock.ExpectGet("teams:t1").SetVal(`{"name":"A","secret":"s","next_game":"g1"}`)
	mock.ExpectGet("games:g1").RedisNil()
	mock.ExpectSet("teams:t1", `{"name":"A","secret":"s"}`, redis.KeepTTL).SetVal("OK")
	// t2's game is still alive, untouched
	mock.ExpectGet("teams:t2").SetVal(`{"name":"B","secret":"s","next_game":"g2"}`)
	mock.ExpectGet("games:g2").SetVal(`{}`)
	// t3 has no pointer at all
	mock.ExpectGet("teams:t3").SetVal(`{"name":"C","secret":"s"}`)

	SweepStaleGames(context.Background())
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestSweepSkipsUnreadableTeams(t *testing.T) {
	mock := newStoreMock()
	mock.ExpectScan(0, "teams:*", 100).SetVal([]string{"teams:t1", "teams:t2"}, 0)
	mock.ExpectGet("teams:t1").SetErr(errors.New("connection reset"))
	mock.ExpectGet("teams:t2").SetVal(`{"name":"B","secret":"s","next_game":"g2"}`)
	mock.ExpectGet("games:g2").RedisNil()
	mock.ExpectSet("teams:t2", `{"name":"B","secret":"s"}`, redis.KeepTTL).SetVal("OK")

	SweepStaleGames(context.Background())
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestSweepStopsOnScanError(t *testing.T) {
	mock := newStoreMock()
	mock.ExpectScan(0, "teams:*", 100).SetErr(errors.New("connection refused"))

	SweepStaleGames(context.Background())
	assert.Nil(t, mock.ExpectationsWereMet())
}
