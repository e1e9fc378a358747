package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nextgame/src/lib"

	"github.com/redis/go-redis/v9"
)

// Documents live in two independent collections, addressed as
// "<collection>:<key>". Values are JSON; games may carry an absolute expiry.
const (
	TeamsCollection = "teams"
	GamesCollection = "games"
)

func docKey(collection, key string) string {
	return fmt.Sprintf("%s:%s", collection, key)
}

// Get loads and decodes a document. A missing key is (false, nil), not an
// error; unknown JSON fields are ignored and missing ones decode as defaults.
func Get(ctx context.Context, collection, key string, out any) (bool, error) {
	rd := lib.GetRedisClient()
	val, err := rd.Get(ctx, docKey(collection, key)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false, err
	}
	return true, nil
}

// Put writes a document. With expiresAt set the item expires at that instant;
// without it any existing TTL on the key is kept, so updating an expiring
// game does not extend its life.
func Put(ctx context.Context, collection, key string, doc any, expiresAt *time.Time) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	rd := lib.GetRedisClient()
	k := docKey(collection, key)
	if expiresAt != nil {
		if err := rd.Set(ctx, k, string(b), 0).Err(); err != nil {
			return err
		}
		return rd.ExpireAt(ctx, k, *expiresAt).Err()
	}
	return rd.Set(ctx, k, string(b), redis.KeepTTL).Err()
}

func Delete(ctx context.Context, collection, key string) error {
	rd := lib.GetRedisClient()
	return rd.Del(ctx, docKey(collection, key)).Err()
}

// ScanKeys walks a whole collection and returns the raw store keys
// (prefix included). Only used by background maintenance.
func ScanKeys(ctx context.Context, collection string) ([]string, error) {
	rd := lib.GetRedisClient()
	var keys []string
	var cursor uint64
	for {
		batch, next, err := rd.Scan(ctx, cursor, collection+":*", 100).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		if next == 0 {
			return keys, nil
		}
		cursor = next
	}
}
