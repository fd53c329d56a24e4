package pkg

import "github.com/google/uuid"

// GenerateMatchID - returns a new random match id.
func GenerateMatchID() string {
	return uuid.NewString()
}
