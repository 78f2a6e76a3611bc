package tokenpkg

import "time"

// Maker is an interface for managing identity tokens.
type Maker interface {
	// CreateToken creates a new token for the given user and duration.
	CreateToken(userID int64, username string, isAdmin bool, duration time.Duration) (string, *Payload, error)

	// VerifyToken checks if the token is valid and returns its payload.
	VerifyToken(token string) (*Payload, error)
}
