// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accountd/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Mobile is required by the registration contract but is not part of the
// persisted schema.
type RegisterInput struct {
	FirstName  string
	MiddleName string
	LastName   string
	Email      string
	Mobile     string
	Password   string
}

// LoginInput defines the data required to authenticate.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the public profile after a successful login.
// It never carries the account ID, the stored hash or timestamps.
type LoginOutput struct {
	Profile entity.PublicProfile
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) error
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
