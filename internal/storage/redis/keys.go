package redis

import "fmt"

// Key prefix for all arena data
const keyPrefix = "arena"

// sessionKey returns the Redis key for a session record
func sessionKey(token string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, token)
}
