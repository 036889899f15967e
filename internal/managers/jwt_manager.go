package managers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"calendar-server/internal/config"
)

// ErrTokenInvalid is returned by ValidateJWT for any token that fails decoding,
// signature verification or expiry. Callers cannot tell these cases apart.
var ErrTokenInvalid = errors.New("invalid token")

// JWTMgr creates and verifies signed, time-bound claim sets.
type JWTMgr interface {
	GenerateAccessToken(claims jwt.MapClaims) (string, error)
	GenerateRefreshToken(claims jwt.MapClaims) (string, error)
	ValidateJWT(tokenString string) (jwt.MapClaims, error)
}

// JWTManager handles JWT generation, signing, and validation with a shared HMAC secret.
type JWTManager struct {
	secret     []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewJWTManager creates a new JWTManager from the configured secret, algorithm and lifetimes.
// Only HMAC algorithms (HS256, HS384, HS512) are accepted.
func NewJWTManager(cfg *config.Config) (*JWTManager, error) {
	method := jwt.GetSigningMethod(cfg.JWTAlgorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported JWT algorithm %q", cfg.JWTAlgorithm)
	}

	return &JWTManager{
		secret:     []byte(cfg.JWTSecret),
		method:     method,
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		now:        time.Now,
	}, nil
}

// WithClock replaces the time source. Used by tests to produce expired tokens.
func (jm *JWTManager) WithClock(now func() time.Time) *JWTManager {
	jm.now = now
	return jm
}

// GenerateAccessToken signs the given claims with an expiry of now + access TTL.
func (jm *JWTManager) GenerateAccessToken(claims jwt.MapClaims) (string, error) {
	return jm.sign(claims, jm.accessTTL)
}

// GenerateRefreshToken signs the given claims with an expiry of now + refresh TTL.
func (jm *JWTManager) GenerateRefreshToken(claims jwt.MapClaims) (string, error) {
	return jm.sign(claims, jm.refreshTTL)
}

// ValidateJWT validates the given JWT and returns the claims if valid.
func (jm *JWTManager) ValidateJWT(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jm.secret, nil
	},
		jwt.WithValidMethods([]string{jm.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(jm.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

func (jm *JWTManager) sign(claims jwt.MapClaims, ttl time.Duration) (string, error) {
	toEncode := make(jwt.MapClaims, len(claims)+1)
	for k, v := range claims {
		toEncode[k] = v
	}
	toEncode["exp"] = jm.now().Add(ttl).Unix()

	token := jwt.NewWithClaims(jm.method, toEncode)
	return token.SignedString(jm.secret)
}
