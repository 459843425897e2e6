// Package entity contains domain entities for the application.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account owner.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with a generated ID.
func NewUser(email, name, passwordHash string, now time.Time) *User {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
