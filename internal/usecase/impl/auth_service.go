// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "campwatch/internal/delivery/context"
	"campwatch/internal/domain/entity"
	domainerrors "campwatch/internal/domain/errors"
	"campwatch/internal/domain/repository"
	"campwatch/internal/domain/service"
	"campwatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, mapUserError(err, "failed to find user by email")
	}

	return user, nil
}

func (srv *authService) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapUserError(err, "failed to find user by id")
	}

	return user, nil
}

// CreateUser relies on the unique email index; the repository reports a duplicate as ErrUserAlreadyExists.
func (srv *authService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	user := &entity.User{
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed, err.Error())
	}

	return user, nil
}

func (srv *authService) UpdateUser(ctx context.Context, id uint, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = input.PhoneNumber
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, err
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user disappeared during update")
		}
		srv.log(ctx).Error("Failed to update user", slog.Any("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
	}

	return user, nil
}

// RegisterUser creates the account and issues an access token for it.
func (srv *authService) RegisterUser(ctx context.Context, input *usecase.CreateUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	existing, err := srv.userRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil && existing != nil:
		srv.log(ctx).Warn("Registration rejected, email already registered", slog.String("email", input.Email))

		return nil, domainerrors.ErrUserAlreadyExists
	case err != nil && !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	user, err := srv.CreateUser(ctx, input)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}
	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{
		User:        user,
		AccessToken: token,
	}, nil
}

func mapUserError(err error, message string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, message)
	}

	return errors.Wrap(err, message)
}
