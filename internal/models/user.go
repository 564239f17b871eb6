package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID                uuid.UUID `json:"id" db:"id"`                               // Primary key
	Email             string    `json:"email" db:"email"`                         // Unique, stored lowercase
	PasswordHash      string    `json:"-" db:"password_hash"`                     // bcrypt hash, never serialized
	Name              string    `json:"name" db:"name"`                           // Display name
	IsVerified        bool      `json:"is_verified" db:"is_verified"`             // Email confirmed
	VerificationToken *string   `json:"-" db:"verification_token"`                // Single-use, cleared on verify
	CreatedAt         time.Time `json:"created_at" db:"created_at"`               // Creation timestamp
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`               // Last update timestamp
}

// UserProfile is the user representation returned to clients.
type UserProfile struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	IsVerified bool     `json:"is_verified"`
	CreatedAt  string   `json:"created_at"`
	DeviceIDs  []string `json:"device_ids"`
}

// Profile builds the client-facing representation with the user's linked device ids.
func (u *UserDB) Profile(deviceIDs []string) UserProfile {
	if deviceIDs == nil {
		deviceIDs = []string{}
	}
	return UserProfile{
		ID:         u.ID.String(),
		Email:      u.Email,
		Name:       u.Name,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt.UTC().Format(time.RFC3339),
		DeviceIDs:  deviceIDs,
	}
}
