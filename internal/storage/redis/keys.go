package redis

import "fmt"

// Key prefix for all ledger data
const keyPrefix = "pigdice"

// scoresKey returns the Redis key holding the score table document
func scoresKey() string {
	return fmt.Sprintf("%s:scores", keyPrefix)
}
