package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"skill-extraction-backend/internal/domain"
	"skill-extraction-backend/internal/usecase"
	"skill-extraction-backend/pkg/apperror"
	"skill-extraction-backend/pkg/auth"
	"skill-extraction-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer("test-secret-key", "test-issuer", "test-audience", 60)
}

func newAuthUsecase(userRepo *MockUserRepo, issuer *auth.TokenIssuer) domain.AuthUsecase {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return usecase.NewAuthUsecase(userRepo, issuer, validate)
}

func TestAuthUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and returns a valid token", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		issuer := newTestIssuer()
		uc := newAuthUsecase(userRepo, issuer)

		userRepo.On("GetByUsername", ctx, "johndoe").Return(nil, nil)
		userRepo.On("GetByEmail", ctx, "john@example.com").Return(nil, nil)
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			// The hash, not the raw password, must reach the repository.
			return u.Username == "johndoe" &&
				u.PasswordHash != "secret123" &&
				auth.VerifyPassword("secret123", u.PasswordHash)
		})).Return(&domain.User{ID: 42, Username: "johndoe", Email: "john@example.com"}, nil)

		user, token, err := uc.Register(ctx, "johndoe", "john@example.com", "secret123")

		assert.NoError(t, err)
		assert.Equal(t, int64(42), user.ID)
		claims, err := issuer.VerifyToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate username before creating", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUsecase(userRepo, newTestIssuer())

		userRepo.On("GetByUsername", ctx, "johndoe").Return(&domain.User{ID: 1, Username: "johndoe"}, nil)

		_, _, err := uc.Register(ctx, "johndoe", "other@example.com", "secret123")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Equal(t, "Username already exists", appErr.Message)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects duplicate email before creating", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUsecase(userRepo, newTestIssuer())

		userRepo.On("GetByUsername", ctx, "newuser").Return(nil, nil)
		userRepo.On("GetByEmail", ctx, "john@example.com").Return(&domain.User{ID: 1, Email: "john@example.com"}, nil)

		_, _, err := uc.Register(ctx, "newuser", "john@example.com", "secret123")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Equal(t, "Email already exists", appErr.Message)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed input before touching the repository", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUsecase(userRepo, newTestIssuer())

		_, _, err := uc.Register(ctx, "john doe", "not-an-email", "short")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		userRepo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	hash, _ := auth.HashPassword("secret123")
	stored := &domain.User{ID: 7, Username: "johndoe", Email: "john@example.com", PasswordHash: hash}

	t.Run("logs in by username", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		issuer := newTestIssuer()
		uc := newAuthUsecase(userRepo, issuer)

		userRepo.On("GetByUsername", ctx, "johndoe").Return(stored, nil)

		user, token, err := uc.Login(ctx, "johndoe", "secret123")

		assert.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		claims, err := issuer.VerifyToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "johndoe", claims.Username)
	})

	t.Run("falls back to email lookup", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUsecase(userRepo, newTestIssuer())

		userRepo.On("GetByUsername", ctx, "john@example.com").Return(nil, nil)
		userRepo.On("GetByEmail", ctx, "john@example.com").Return(stored, nil)

		user, _, err := uc.Login(ctx, "john@example.com", "secret123")

		assert.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		userRepo.AssertExpectations(t)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUsecase(userRepo, newTestIssuer())

		userRepo.On("GetByUsername", ctx, "nobody").Return(nil, nil)
		userRepo.On("GetByEmail", ctx, "nobody").Return(nil, nil)
		userRepo.On("GetByUsername", ctx, "johndoe").Return(stored, nil)

		_, _, errUnknown := uc.Login(ctx, "nobody", "secret123")
		_, _, errWrongPw := uc.Login(ctx, "johndoe", "wrong-password")

		var appErrUnknown, appErrWrongPw *apperror.AppError
		assert.ErrorAs(t, errUnknown, &appErrUnknown)
		assert.ErrorAs(t, errWrongPw, &appErrWrongPw)
		assert.Equal(t, http.StatusUnauthorized, appErrUnknown.Code)
		assert.Equal(t, http.StatusUnauthorized, appErrWrongPw.Code)
		assert.Equal(t, appErrUnknown.Message, appErrWrongPw.Message)
	})

	t.Run("repository error surfaces as internal", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUsecase(userRepo, newTestIssuer())

		userRepo.On("GetByUsername", ctx, "johndoe").Return(nil, errors.New("connection refused"))

		_, _, err := uc.Login(ctx, "johndoe", "secret123")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	})
}

func TestAuthUsecase_GetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the user", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUsecase(userRepo, newTestIssuer())

		userRepo.On("GetByID", ctx, int64(7)).Return(&domain.User{ID: 7, Username: "johndoe"}, nil)

		user, err := uc.GetCurrentUser(ctx, 7)

		assert.NoError(t, err)
		assert.Equal(t, "johndoe", user.Username)
	})

	t.Run("vanished user yields not found", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUsecase(userRepo, newTestIssuer())

		userRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)

		_, err := uc.GetCurrentUser(ctx, 99)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})
}
