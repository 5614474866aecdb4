// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that owns notification preferences.
type User struct {
	ID          uint      `json:"id"`           // Auto-increment identifier assigned by the store.
	Email       string    `json:"email"`        // Unique contact email.
	PhoneNumber *string   `json:"phone_number"` // Optional default phone number for SMS delivery.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when this account was created.
	UpdatedAt   time.Time `json:"updated_at"`   // Timestamp of the last modification.
}
