package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"accountd/internal/domain/entity"
	domainerrors "accountd/internal/domain/errors"
	"accountd/internal/domain/repository"
	mockRepo "accountd/internal/mocks/repository"
	mockSvc "accountd/internal/mocks/service"
	"accountd/internal/usecase"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Logger:      logger,
	})

	return accountServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		hasher:      hasher,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@x.com",
		Mobile:    "123",
		Password:  "s3cret",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			assert.Equal(t, "Ada Lovelace", account.Name)
			assert.Equal(t, "ada@x.com", account.Email)
			assert.Equal(t, "hashed_password", account.PasswordHash)
			assert.NotEqual(t, input.Password, account.PasswordHash)
			account.ID = 1
		}).
		Return(nil)

	require.NoError(t, fx.service.Register(ctx, input))
}

func TestAccountService_Register_MiddleNameJoinsWithoutStrayWhitespace(t *testing.T) {
	tests := []struct {
		name       string
		middleName string
		wantName   string
	}{
		{name: "no middle name", middleName: "", wantName: "Ada Lovelace"},
		{name: "middle name present", middleName: "King", wantName: "Ada King Lovelace"},
		{name: "whitespace-only middle name", middleName: "   ", wantName: "Ada Lovelace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)

			ctx := context.Background()
			input := validRegisterInput()
			input.MiddleName = tt.middleName

			fx.accountRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrAccountNotFound)
			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
			fx.accountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					assert.Equal(t, tt.wantName, account.Name)
				}).
				Return(nil)

			require.NoError(t, fx.service.Register(ctx, input))
		})
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.Account{ID: 1, Email: input.Email}, nil)

	err := fx.service.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAccountService_Register_DuplicateEmailLosesInsertRace(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := validRegisterInput()

	// The probe sees nothing, but a concurrent registration wins the insert.
	// The store's unique index reports the duplicate instead.
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(domainerrors.ErrEmailTaken.WrapMessage("email already exists"))

	err := fx.service.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAccountService_Register_MissingFieldsFailBeforeStore(t *testing.T) {
	mutations := map[string]func(*usecase.RegisterInput){
		"first_name": func(in *usecase.RegisterInput) { in.FirstName = "" },
		"last_name":  func(in *usecase.RegisterInput) { in.LastName = "" },
		"email":      func(in *usecase.RegisterInput) { in.Email = "" },
		"mobile":     func(in *usecase.RegisterInput) { in.Mobile = "" },
		"password":   func(in *usecase.RegisterInput) { in.Password = "" },
		"whitespace": func(in *usecase.RegisterInput) { in.Email = "   " },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			// No expectations registered: any store or hasher call fails the test.
			fx := createTestAccountService(t)

			input := validRegisterInput()
			mutate(input)

			err := fx.service.Register(context.Background(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			fx.accountRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
			fx.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("", assert.AnError)

	err := fx.service.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	stored := &entity.Account{
		ID:           7,
		Name:         "Ada Lovelace",
		Email:        "ada@x.com",
		PasswordHash: "hashed_password",
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ada@x.com").Return(stored, nil)
	fx.hasher.EXPECT().Check("s3cret", "hashed_password").Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@x.com", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, entity.PublicProfile{Name: "Ada Lovelace", Email: "ada@x.com"}, output.Profile)
}

func TestAccountService_Login_BadFactorsAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	// Unknown email.
	fxUnknown := createTestAccountService(t)
	fxUnknown.accountRepo.EXPECT().
		FindByEmail(ctx, "ghost@x.com").
		Return(nil, repository.ErrAccountNotFound)

	_, errUnknown := fxUnknown.service.Login(ctx, &usecase.LoginInput{Email: "ghost@x.com", Password: "s3cret"})

	// Known email, wrong password.
	fxWrong := createTestAccountService(t)
	fxWrong.accountRepo.EXPECT().
		FindByEmail(ctx, "ada@x.com").
		Return(&entity.Account{Email: "ada@x.com", PasswordHash: "hashed_password"}, nil)
	fxWrong.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	_, errWrong := fxWrong.service.Login(ctx, &usecase.LoginInput{Email: "ada@x.com", Password: "wrong"})

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.ErrorIs(t, errUnknown, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, domainerrors.ErrInvalidCredentials)

	// Same domain error, same user-visible message: nothing leaks which factor failed.
	assert.Equal(t, domainerrors.ErrInvalidCredentials.Message(), "Invalid email or password.")
}

func TestAccountService_Login_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	for _, input := range []*usecase.LoginInput{
		{Email: "", Password: "s3cret"},
		{Email: "ada@x.com", Password: ""},
		{},
		nil,
	} {
		_, err := fx.service.Login(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}
