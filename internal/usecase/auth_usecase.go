// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"campwatch/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a user.
type CreateUserInput struct {
	Email       string
	PhoneNumber *string
}

// UpdateUserInput carries the user fields that may change. Nil fields are left untouched.
type UpdateUserInput struct {
	Email       *string
	PhoneNumber *string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user and an access token bound to it.
type RegisterOutput struct {
	User        *entity.User
	AccessToken string
}

// AuthUsecase defines the user account operations.
type AuthUsecase interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uint) (*entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id uint, input *UpdateUserInput) (*entity.User, error)
	// RegisterUser rejects an email that is already registered.
	RegisterUser(ctx context.Context, input *CreateUserInput) (*RegisterOutput, error)
}
