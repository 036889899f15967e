package services

import (
	"context"
	"errors"

	"calendar-server/internal/managers"
	"calendar-server/internal/repositories"
	"calendar-server/internal/schemas"
)

// Errors returned by AuthResolver. Unlike AuthService.CurrentUser these are kept apart
// so the events and todos services can answer 401, 404 and 403 respectively.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrUserNotFound = errors.New("user not found")
)

// AuthContext is the identity resolved from a bearer token for a single request.
type AuthContext struct {
	User *schemas.User
}

// UserID returns the id of the resolved user.
func (ac *AuthContext) UserID() int64 {
	return ac.User.ID
}

// ContextResolver resolves a bearer token into an AuthContext.
type ContextResolver interface {
	Resolve(ctx context.Context, token string) (*AuthContext, error)
}

// AuthResolver implements ContextResolver with the token codec and the user directory.
type AuthResolver struct {
	users  repositories.UserRepository
	jwtMgr managers.JWTMgr
}

// NewAuthResolver constructs an AuthResolver.
func NewAuthResolver(users repositories.UserRepository, jwtMgr managers.JWTMgr) *AuthResolver {
	return &AuthResolver{users: users, jwtMgr: jwtMgr}
}

// Resolve validates token and loads its subject. It fails with ErrInvalidToken,
// ErrUserNotFound or ErrInactiveUser; storage errors are returned unchanged.
func (r *AuthResolver) Resolve(ctx context.Context, token string) (*AuthContext, error) {
	claims, err := r.jwtMgr.ValidateJWT(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userID, err := SubjectUserID(claims)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := r.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	return &AuthContext{User: user}, nil
}
