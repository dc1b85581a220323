package redis

import (
	"fmt"

	"github.com/google/uuid"
)

// Key prefix for all plugin data
const keyPrefix = "levelborder"

// playerStateKey returns the Redis key for a player's state document
func playerStateKey(id uuid.UUID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of stored player IDs
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}
