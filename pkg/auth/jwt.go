package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer signs and verifies HS256 bearer tokens. Built once at startup
// from required configuration; shared across requests.
type TokenIssuer struct {
	secret     []byte
	issuer     string
	audience   string
	expiration time.Duration
}

type TokenClaims struct {
	UserID   int64
	Username string
	Email    string
}

func NewTokenIssuer(secret, issuer, audience string, expirationMinutes int) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		issuer:     issuer,
		audience:   audience,
		expiration: time.Duration(expirationMinutes) * time.Minute,
	}
}

// GenerateToken issues a signed token carrying the user's identity.
// The jti claim is random per call.
func (t *TokenIssuer) GenerateToken(userID int64, username, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   strconv.FormatInt(userID, 10),
		"name":  username,
		"email": email,
		"jti":   uuid.NewString(),
		"iss":   t.issuer,
		"aud":   t.audience,
		"iat":   now.Unix(),
		"exp":   now.Add(t.expiration).Unix(),
	})

	return token.SignedString(t.secret)
}

// VerifyToken checks signature, issuer, audience and expiry, and returns the
// identity claims. Any failure means the caller is unauthenticated.
func (t *TokenIssuer) VerifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithIssuer(t.issuer), jwt.WithAudience(t.audience), jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	username, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	return &TokenClaims{UserID: userID, Username: username, Email: email}, nil
}
