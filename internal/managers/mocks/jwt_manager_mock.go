package mocks

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

// MockJwtManager is a mock of the JWTManager.
// It implements managers.JWTMgr and is used to simulate token failures in tests.
type MockJwtManager struct {
	mock.Mock
}

// GenerateAccessToken returns a mock access token and an optional error.
func (m *MockJwtManager) GenerateAccessToken(claims jwt.MapClaims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

// GenerateRefreshToken returns a mock refresh token and an optional error.
func (m *MockJwtManager) GenerateRefreshToken(claims jwt.MapClaims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

// ValidateJWT returns mock claims and an optional error.
func (m *MockJwtManager) ValidateJWT(tokenString string) (jwt.MapClaims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(jwt.MapClaims)
	return claims, args.Error(1)
}
