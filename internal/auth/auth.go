// Package auth issues and validates the anonymous play-session tokens the
// HTTP layer uses to scope a player's cumulative answer state, and provides
// a bcrypt-hashed admin token check. No route or CLI command in this
// repository uses the admin check.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/crossplay/wordquest/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrTokenExpired = errors.New("session token expired")
)

// SessionService issues and validates anonymous session JWTs. A session
// carries no identity beyond a generated session ID; there is no user
// account system in this game.
type SessionService struct {
	jwtSecret     []byte
	tokenDuration time.Duration
}

// NewSessionService builds a SessionService signing with jwtSecret; tokens
// are valid for 24 hours, matching one day's puzzle lifecycle.
func NewSessionService(jwtSecret string) *SessionService {
	return &SessionService{jwtSecret: []byte(jwtSecret), tokenDuration: 24 * time.Hour}
}

// IssueSession creates a new session token for sessionID.
func (s *SessionService) IssueSession(sessionID string) (string, error) {
	now := time.Now()
	claims := &models.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "wordquest",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateSession parses and validates a session token, returning its
// claims.
func (s *SessionService) ValidateSession(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// AdminAuthenticator checks a presented admin token against a bcrypt hash
// of the operator's configured admin token, so the raw token is never kept
// in process memory or logs.
type AdminAuthenticator struct {
	tokenHash string
}

// NewAdminAuthenticator hashes token once at startup for later comparisons.
func NewAdminAuthenticator(token string) (*AdminAuthenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AdminAuthenticator{tokenHash: string(hash)}, nil
}

// Check reports whether presented matches the configured admin token.
func (a *AdminAuthenticator) Check(presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.tokenHash), []byte(presented)) == nil
}
