package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered member account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// DisplayName is the name shown to other group members.
	DisplayName string

	// Email is the user's email address (unique). Used for login and
	// for matching email invitations.
	Email string

	// PasswordHash is the bcrypt hash of the user's password. Never
	// exposed outside the auth and storage layers.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser creates a user with a fresh ID and creation timestamp.
func NewUser(email, displayName, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		DisplayName:  displayName,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
