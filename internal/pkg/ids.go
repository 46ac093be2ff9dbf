package pkg

import "github.com/google/uuid"

// GenerateNewSessionID - returns a random identifier for a game session.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
