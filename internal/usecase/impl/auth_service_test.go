package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"campwatch/internal/domain/entity"
	domainerrors "campwatch/internal/domain/errors"
	"campwatch/internal/domain/repository"
	mockRepo "campwatch/internal/mocks/repository"
	mockSvc "campwatch/internal/mocks/service"
	"campwatch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthService(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockUserRepository, *mockSvc.MockTokenService) {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	srv := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		TokenService: tokenSvc,
		Logger:       logger,
	})

	return srv, userRepo, tokenSvc
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	srv, userRepo, tokenSvc := createTestAuthService(t)
	ctx := context.Background()
	phone := "+14065550100"

	userRepo.EXPECT().FindByEmail(ctx, "hiker@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "hiker@example.com" && u.PhoneNumber != nil && *u.PhoneNumber == phone
	})).RunAndReturn(func(_ context.Context, u *entity.User) error {
		u.ID = 7

		return nil
	})
	tokenSvc.EXPECT().GenerateAccessToken(uint(7)).Return("signed-token", nil)

	out, err := srv.RegisterUser(ctx, &usecase.CreateUserInput{Email: "hiker@example.com", PhoneNumber: &phone})

	require.NoError(t, err)
	assert.Equal(t, uint(7), out.User.ID)
	assert.Equal(t, "signed-token", out.AccessToken)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	srv, userRepo, _ := createTestAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, "hiker@example.com").Return(&entity.User{ID: 1, Email: "hiker@example.com"}, nil)

	out, err := srv.RegisterUser(ctx, &usecase.CreateUserInput{Email: "hiker@example.com"})

	assert.Nil(t, out)
	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_RegisterUser_LostRaceOnUniqueIndex(t *testing.T) {
	srv, userRepo, _ := createTestAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, "hiker@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))

	_, err := srv.RegisterUser(ctx, &usecase.CreateUserInput{Email: "hiker@example.com"})

	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_RegisterUser_LookupFailure(t *testing.T) {
	srv, userRepo, _ := createTestAuthService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	userRepo.EXPECT().FindByEmail(ctx, "hiker@example.com").Return(nil, dbErr)

	_, err := srv.RegisterUser(ctx, &usecase.CreateUserInput{Email: "hiker@example.com"})

	require.ErrorIs(t, err, dbErr)
}

func TestAuthService_CreateUser_StoreFailure(t *testing.T) {
	srv, userRepo, _ := createTestAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("disk full"))

	_, err := srv.CreateUser(ctx, &usecase.CreateUserInput{Email: "hiker@example.com"})

	require.ErrorIs(t, err, domainerrors.ErrUserCreationFailed)
}

func TestAuthService_GetUserByID_NotFound(t *testing.T) {
	srv, userRepo, _ := createTestAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByID(ctx, uint(42)).Return(nil, repository.ErrUserNotFound)

	_, err := srv.GetUserByID(ctx, 42)

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_UpdateUser_AppliesOnlySuppliedFields(t *testing.T) {
	srv, userRepo, _ := createTestAuthService(t)
	ctx := context.Background()
	oldPhone := "+14065550100"
	newPhone := "+14065550199"

	userRepo.EXPECT().FindByID(ctx, uint(3)).Return(&entity.User{ID: 3, Email: "hiker@example.com", PhoneNumber: &oldPhone}, nil)
	userRepo.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "hiker@example.com" && *u.PhoneNumber == newPhone
	})).Return(nil)

	user, err := srv.UpdateUser(ctx, 3, &usecase.UpdateUserInput{PhoneNumber: &newPhone})

	require.NoError(t, err)
	assert.Equal(t, "hiker@example.com", user.Email)
	assert.Equal(t, newPhone, *user.PhoneNumber)
}

func TestAuthService_UpdateUser_NotFound(t *testing.T) {
	srv, userRepo, _ := createTestAuthService(t)
	ctx := context.Background()
	email := "new@example.com"

	userRepo.EXPECT().FindByID(ctx, uint(9)).Return(nil, repository.ErrUserNotFound)

	_, err := srv.UpdateUser(ctx, 9, &usecase.UpdateUserInput{Email: &email})

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
