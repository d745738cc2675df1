package usecase

import (
	"context"
	"strings"

	"skill-extraction-backend/internal/domain"
	"skill-extraction-backend/pkg/apperror"
	"skill-extraction-backend/pkg/auth"
	"skill-extraction-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// invalidCredentials is deliberately identical for "no such user" and
// "wrong password" so usernames cannot be enumerated.
const invalidCredentials = "Invalid username/email or password"

type registerInput struct {
	Username string `validate:"required,min=3,max=50,valid_username"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenIssuer
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenIssuer, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens, validate: validate}
}

func (u *authUsecase) Register(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	// Validation
	if err := u.validate.Struct(registerInput{Username: username, Email: email, Password: password}); err != nil {
		return nil, "", apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	// Existence checks are the caller's job; duplicates are a recoverable
	// validation error, not a fatal one.
	existing, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	if existing != nil {
		return nil, "", apperror.BadRequest("Username already exists")
	}

	existing, err = u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	if existing != nil {
		return nil, "", apperror.BadRequest("Email already exists")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	user, err := u.userRepo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	return user, token, nil
}

func (u *authUsecase) Login(ctx context.Context, usernameOrEmail, password string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByUsername(ctx, usernameOrEmail)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	if user == nil {
		user, err = u.userRepo.GetByEmail(ctx, usernameOrEmail)
		if err != nil {
			return nil, "", apperror.Internal(err)
		}
	}

	if user == nil || !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, "", apperror.Unauthorized(invalidCredentials)
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	return user, token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}
