package managers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-server/internal/config"
	"calendar-server/internal/testutils"
)

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAlgorithm:    "HS256",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
		BcryptCost:      4,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	jwtMgr, err := NewJWTManager(newTestConfig())
	require.NoError(t, err)

	token, err := jwtMgr.GenerateAccessToken(jwt.MapClaims{"sub": "42", "email": "a@x.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtMgr.ValidateJWT(token)
	require.NoError(t, err)

	sub, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "42", sub)
	assert.Equal(t, "a@x.com", claims["email"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, 5*time.Second)
}

func TestRefreshTokenUsesRefreshTTL(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	jwtMgr, err := NewJWTManager(newTestConfig())
	require.NoError(t, err)
	jwtMgr.WithClock(func() time.Time { return fixed })

	token, err := jwtMgr.GenerateRefreshToken(jwt.MapClaims{"sub": "7"})
	require.NoError(t, err)

	claims, err := jwtMgr.ValidateJWT(token)
	require.NoError(t, err)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(7*24*time.Hour).Unix(), exp.Unix())
}

func TestGenerateDoesNotMutateCallerClaims(t *testing.T) {
	jwtMgr, err := NewJWTManager(newTestConfig())
	require.NoError(t, err)

	claims := jwt.MapClaims{"sub": "1"}
	_, err = jwtMgr.GenerateAccessToken(claims)
	require.NoError(t, err)

	_, hasExp := claims["exp"]
	assert.False(t, hasExp)
}

func TestExpiredTokenIsInvalid(t *testing.T) {
	jwtMgr, err := NewJWTManager(newTestConfig())
	require.NoError(t, err)

	jwtMgr.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
	token, err := jwtMgr.GenerateAccessToken(jwt.MapClaims{"sub": "1"})
	require.NoError(t, err)

	jwtMgr.WithClock(time.Now)
	_, err = jwtMgr.ValidateJWT(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTamperedTokenIsInvalid(t *testing.T) {
	jwtMgr, err := NewJWTManager(newTestConfig())
	require.NoError(t, err)

	token, err := jwtMgr.GenerateAccessToken(jwt.MapClaims{"sub": "1"})
	require.NoError(t, err)

	_, err = jwtMgr.ValidateJWT(testutils.TamperSignature(token))
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenInvalidCases(t *testing.T) {
	jwtMgr, err := NewJWTManager(newTestConfig())
	require.NoError(t, err)

	otherCfg := newTestConfig()
	otherCfg.JWTSecret = "another-secret"
	otherMgr, err := NewJWTManager(otherCfg)
	require.NoError(t, err)
	foreignToken, err := otherMgr.GenerateAccessToken(jwt.MapClaims{"sub": "1"})
	require.NoError(t, err)

	hs512Cfg := newTestConfig()
	hs512Cfg.JWTAlgorithm = "HS512"
	hs512Mgr, err := NewJWTManager(hs512Cfg)
	require.NoError(t, err)
	otherAlgToken, err := hs512Mgr.GenerateAccessToken(jwt.MapClaims{"sub": "1"})
	require.NoError(t, err)

	noExpToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{"Empty", ""},
		{"Garbage", "not.a.token"},
		{"WrongSecret", foreignToken},
		{"WrongAlgorithm", otherAlgToken},
		{"MissingExpiry", noExpToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := jwtMgr.ValidateJWT(tc.token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestNewJWTManagerRejectsNonHMAC(t *testing.T) {
	for _, alg := range []string{"RS256", "EdDSA", "none", "bogus"} {
		cfg := newTestConfig()
		cfg.JWTAlgorithm = alg
		_, err := NewJWTManager(cfg)
		assert.Error(t, err, alg)
	}
}
