// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accountd/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when no account matches a lookup.
// Absence is an expected outcome of FindByEmail, not a storage fault.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByEmail retrieves a single account by its email address (exact match).
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account and fills in the store-assigned ID and CreatedAt.
	// The unique index on email is the authoritative duplicate guard: a losing
	// concurrent insert surfaces as domainerrors.ErrEmailTaken.
	Create(ctx context.Context, account *entity.Account) error
}
