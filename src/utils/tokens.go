package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"nextgame/src/types"
)

const tokenBytes = 10

// NewToken returns a 20-character lowercase hex token (80 bits of entropy).
// Team keys, admin secrets, player ids and game keys all come from here;
// uniqueness is statistical, never re-checked against the store.
func NewToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%w: %s", types.ErrEntropyUnavailable, err.Error())
	}
	return hex.EncodeToString(buf), nil
}
