package usecase

import (
	"context"
	"time"

	"yelocar/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	FullName        string `json:"fullName" validate:"required,notblank,min=2,max=100"`
	PhoneNumber     string `json:"phoneNumber" validate:"required,phone10"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,strongpassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the tokens and the session profile after sign-up or sign-in.
type AuthOutput struct {
	Identity     entity.Identity
	IDToken      string
	RefreshToken string
	ExpiresIn    time.Duration
	Profile      *entity.UserProfile
	Notices      []entity.Notice
}

// AccountUsecase defines the account and session entry points.
type AccountUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)
	SignOut(ctx context.Context, identity entity.Identity) error

	// Authenticate verifies an ID token.
	Authenticate(ctx context.Context, idToken string) (*entity.Identity, error)
}
