package models

import (
	"time"

	"github.com/google/uuid"
)

// DeviceMappingDB represents a user-to-device visibility grant in the database.
// A (user_id, device_id) pair exists at most once; several users may hold a
// grant for the same device concurrently.
type DeviceMappingDB struct {
	ID         uuid.UUID `json:"id" db:"id"`                   // Primary key
	UserID     uuid.UUID `json:"user_id" db:"user_id"`         // Owning user
	DeviceID   string    `json:"device_id" db:"device_id"`     // External device identifier
	DeviceName string    `json:"device_name" db:"device_name"` // Human-readable label, defaults to device_id
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Link timestamp
}

// Device is the client-facing representation of one linked device.
type Device struct {
	DeviceID   string `json:"device_id"`
	DeviceName string `json:"device_name"`
	CreatedAt  string `json:"created_at"`
}

// Device builds the client-facing representation.
func (m *DeviceMappingDB) Device() Device {
	return Device{
		DeviceID:   m.DeviceID,
		DeviceName: m.DeviceName,
		CreatedAt:  m.CreatedAt.UTC().Format(time.RFC3339),
	}
}
