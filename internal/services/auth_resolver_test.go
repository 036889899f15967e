package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"calendar-server/internal/repositories"
	"calendar-server/internal/repositories/mocks"
	"calendar-server/internal/schemas"
	"calendar-server/internal/testutils"
)

func TestResolve(t *testing.T) {
	jwtMgr := newTestJWTManager(t)
	activeToken, err := jwtMgr.GenerateAccessToken(jwt.MapClaims{"sub": "1", "email": "a@x.com"})
	require.NoError(t, err)
	inactiveToken, err := jwtMgr.GenerateAccessToken(jwt.MapClaims{"sub": "2"})
	require.NoError(t, err)
	missingToken, err := jwtMgr.GenerateAccessToken(jwt.MapClaims{"sub": "3"})
	require.NoError(t, err)
	badSubjectToken, err := jwtMgr.GenerateAccessToken(jwt.MapClaims{"sub": "abc"})
	require.NoError(t, err)

	users := &mocks.MockUserRepository{}
	users.On("FindByID", mock.Anything, int64(1)).Return(&schemas.User{ID: 1, Email: "a@x.com", IsActive: true}, nil)
	users.On("FindByID", mock.Anything, int64(2)).Return(&schemas.User{ID: 2, Email: "c@x.com", IsActive: false}, nil)
	users.On("FindByID", mock.Anything, int64(3)).Return(nil, repositories.ErrNotFound)

	resolver := NewAuthResolver(users, jwtMgr)

	tests := []struct {
		name    string
		token   string
		wantErr error
		wantID  int64
	}{
		{name: "Active", token: activeToken, wantID: 1},
		{name: "Inactive", token: inactiveToken, wantErr: ErrInactiveUser},
		{name: "MissingUser", token: missingToken, wantErr: ErrUserNotFound},
		{name: "NonNumericSubject", token: badSubjectToken, wantErr: ErrInvalidToken},
		{name: "Tampered", token: testutils.TamperSignature(activeToken), wantErr: ErrInvalidToken},
		{name: "Empty", token: "", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authCtx, err := resolver.Resolve(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.Nil(t, authCtx)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, authCtx.UserID())
		})
	}
}

func TestResolveExpiredToken(t *testing.T) {
	jwtMgr := newTestJWTManager(t)
	jwtMgr.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
	expired, err := jwtMgr.GenerateAccessToken(jwt.MapClaims{"sub": "1"})
	require.NoError(t, err)

	users := &mocks.MockUserRepository{}
	resolver := NewAuthResolver(users, newTestJWTManager(t))

	_, err = resolver.Resolve(context.Background(), expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
	users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestResolvePropagatesStorageError(t *testing.T) {
	jwtMgr := newTestJWTManager(t)
	token, err := jwtMgr.GenerateAccessToken(jwt.MapClaims{"sub": "1"})
	require.NoError(t, err)

	storageErr := errors.New("pool closed")
	users := &mocks.MockUserRepository{}
	users.On("FindByID", mock.Anything, int64(1)).Return(nil, storageErr)

	_, err = NewAuthResolver(users, jwtMgr).Resolve(context.Background(), token)
	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}
