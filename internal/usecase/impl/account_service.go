// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "accountd/internal/delivery/context"
	"accountd/internal/domain/entity"
	domainerrors "accountd/internal/domain/errors"
	"accountd/internal/domain/repository"
	"accountd/internal/domain/service"
	"accountd/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process:
// validate, probe for a duplicate email, hash, insert.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	if input == nil || !registerInputComplete(input) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "registration input incomplete")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// Probe first so a duplicate email produces a clean conflict instead of a
	// raw constraint violation. The unique index still decides races.
	_, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email already registered", slog.String("email", input.Email))

		return errors.Wrap(domainerrors.ErrEmailTaken, "registration rejected")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to probe account by email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	account := &entity.Account{
		Name:         displayName(input.FirstName, input.MiddleName, input.LastName),
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return errors.Wrap(err, "failed to create account during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("accountID", account.ID))

	return nil
}

// Login verifies the submitted credentials and returns the public profile.
// A missing account and a password mismatch are indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "login input incomplete")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Debug("Login successful", slog.Int64("accountID", account.ID))

	return &usecase.LoginOutput{Profile: account.Profile()}, nil
}

func registerInputComplete(input *usecase.RegisterInput) bool {
	required := []string{
		input.FirstName,
		input.LastName,
		input.Email,
		input.Mobile,
		input.Password,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}

	return true
}

// displayName joins the name parts with single spaces, collapsing the
// optional middle segment so an absent middle name leaves no stray whitespace.
func displayName(first, middle, last string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{first, middle, last} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, " ")
}
