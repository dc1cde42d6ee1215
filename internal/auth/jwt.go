// Package auth issues and validates the bearer tokens handed out by the
// in-memory backend, and hashes the passwords it stores.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/doulovera/proyx-app/internal/domain"
	apperrors "github.com/doulovera/proyx-app/pkg/errors"
	"github.com/doulovera/proyx-app/pkg/middleware"
)

const issuer = "proyx-app"

// Claims represents the JWT claims for a session token.
type Claims struct {
	UserID string                `json:"user_id"`
	Email  string                `json:"email"`
	Tier   domain.MembershipTier `json:"tier"`
	jwt.RegisteredClaims
}

// JWTManager handles session token generation and validation.
type JWTManager struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewJWTManager creates a manager signing HS256 tokens with secret.
func NewJWTManager(secret string, expiry time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// SetClock replaces the time source used for issuing and expiry checks.
func (m *JWTManager) SetClock(now func() time.Time) {
	m.now = now
}

// Issue creates a signed token for user.
func (m *JWTManager) Issue(user domain.UserProfile) (string, error) {
	now := m.now().UTC()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Tier:   user.MembershipTier,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			Issuer:    issuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Validate parses token and returns its claims. Any failure, including
// expiry, is reported as Unauthorized.
func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		msg := "invalid session token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "your session has expired, please sign in again"
		}
		appErr := apperrors.Unauthorized(msg)
		appErr.Err = fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
		return nil, appErr
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.Unauthorized("invalid session token")
	}
	return claims, nil
}

// TokenValidator adapts the manager to the HTTP auth middleware.
func (m *JWTManager) TokenValidator() middleware.TokenValidator {
	return func(token string) (*middleware.Claims, error) {
		claims, err := m.Validate(token)
		if err != nil {
			return nil, err
		}
		return &middleware.Claims{UserID: claims.UserID, Email: claims.Email}, nil
	}
}

// HashPassword hashes a password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
