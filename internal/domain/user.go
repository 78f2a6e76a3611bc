// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"
)

// ErrUserNotFound indicates that the user is not found.
var ErrUserNotFound = errors.New("user not found")

// User holds identity data. User rows are owned by the identity
// collaborator; the ledger core only reads them.
type User struct {
	ID        int64     `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}
