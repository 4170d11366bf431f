// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Account is the core entity in the system, representing one registered user.
type Account struct {
	ID           int64     // Store-assigned identifier, monotonically increasing, never reused.
	Name         string    // Display name, joined from the name parts supplied at registration.
	Email        string    // Unique login identifier, matched exactly.
	PasswordHash string    // Opaque hasher output. Never the plaintext password.
	CreatedAt    time.Time // Set once when the row is inserted, immutable afterwards.
}

// PublicProfile is the only view of an account that ever leaves the service.
// ID, PasswordHash and CreatedAt stay behind the store boundary.
type PublicProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Profile returns the public view of the account.
func (a *Account) Profile() PublicProfile {
	return PublicProfile{
		Name:  a.Name,
		Email: a.Email,
	}
}
