package domain

import "github.com/google/uuid"

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// User is the owner of zero or more watchlists. Email is the recipient
// identity handed to the notification collaborator.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`
	// Email is where notifications about watched domains are delivered.
	Email string `json:"email"`
}
