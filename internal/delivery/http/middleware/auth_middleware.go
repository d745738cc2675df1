package middleware

import (
	"net/http"
	"strings"

	"skill-extraction-backend/internal/delivery/http/response"
	"skill-extraction-backend/internal/domain"
	"skill-extraction-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token (signature, issuer, audience,
// expiry) and stores the identity claims on the context. Any failure is a
// 401. Whether the subject still resolves to a user is the handler's call:
// /auth/me answers 404 for a valid token whose user is gone.
func AuthMiddleware(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.VerifyToken(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyUsername), claims.Username)
		c.Set(string(domain.KeyUserEmail), claims.Email)

		c.Next()
	}
}

// CurrentUserID reads the authenticated user id set by AuthMiddleware.
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(string(domain.KeyUserID))
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
