package session

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer is the issuer claim on visitor cookies.
const TokenIssuer = "arvana-storefront"

var (
	// ErrTokenInvalid is returned for malformed, forged or foreign tokens.
	ErrTokenInvalid = errors.New("session: invalid token")
	// ErrTokenExpired is returned for tokens past their expiry.
	ErrTokenExpired = errors.New("session: token expired")
)

// Tokens signs and verifies the visitor id carried in the session cookie.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens returns an HS256 token codec. An empty secret is replaced by
// random bytes, so cookies do not survive a restart.
func NewTokens(secret string, ttl time.Duration) (*Tokens, error) {
	if ttl <= 0 {
		return nil, errors.New("session token ttl must be positive")
	}
	key := []byte(strings.TrimSpace(secret))
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
	}
	return &Tokens{secret: key, ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token naming visitorID.
func (t *Tokens) Issue(visitorID string) (string, error) {
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return "", errors.New("visitor id is required")
	}
	now := t.now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   visitorID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies token and returns the visitor id it names.
func (t *Tokens) Parse(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrTokenInvalid
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if claims.Issuer != TokenIssuer || strings.TrimSpace(claims.Subject) == "" {
		return "", ErrTokenInvalid
	}
	if claims.ExpiresAt == nil || !t.now().Before(claims.ExpiresAt.Time) {
		return "", ErrTokenExpired
	}
	return claims.Subject, nil
}
