package auth_test

import (
	"testing"
	"time"

	"skill-extraction-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", "skill-extraction", "skill-extraction-web", 60)

	token, err := issuer.GenerateToken(42, "johndoe", "john@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "johndoe", claims.Username)
	assert.Equal(t, "john@example.com", claims.Email)
}

func TestTokenUniqueJTI(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", "skill-extraction", "skill-extraction-web", 60)

	t1, err := issuer.GenerateToken(1, "a", "a@example.com")
	require.NoError(t, err)
	t2, err := issuer.GenerateToken(1, "a", "a@example.com")
	require.NoError(t, err)

	// Same user, same instant: jti must still differ
	assert.NotEqual(t, t1, t2)
}

func TestTokenVerifyFailures(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", "skill-extraction", "skill-extraction-web", 60)
	token, err := issuer.GenerateToken(7, "jane", "jane@example.com")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := auth.NewTokenIssuer("other-secret", "skill-extraction", "skill-extraction-web", 60)
		_, err := other.VerifyToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := auth.NewTokenIssuer("test-secret", "someone-else", "skill-extraction-web", 60)
		_, err := other.VerifyToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("wrong audience", func(t *testing.T) {
		other := auth.NewTokenIssuer("test-secret", "skill-extraction", "other-app", 60)
		_, err := other.VerifyToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := auth.NewTokenIssuer("test-secret", "skill-extraction", "skill-extraction-web", -1)
		tok, err := expired.GenerateToken(7, "jane", "jane@example.com")
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
		_, err = expired.VerifyToken(tok)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.VerifyToken("not.a.token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
