// Package services contains the business logic of the auth, events and todos services.
// Handlers call into it with plain values and map the returned sentinel errors to HTTP statuses.
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"calendar-server/internal/managers"
	"calendar-server/internal/repositories"
	"calendar-server/internal/schemas"
)

var (
	ErrDuplicateUser      = errors.New("email or username already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrTokenInvalid       = errors.New("token is invalid")
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService handles registration, login, token refresh and current-user lookup.
// It keeps no state of its own between calls.
type AuthService struct {
	users       repositories.UserRepository
	passwordMgr managers.PasswordMgr
	jwtMgr      managers.JWTMgr
	now         func() time.Time
}

// NewAuthService constructs an AuthService from its collaborators.
func NewAuthService(users repositories.UserRepository, passwordMgr managers.PasswordMgr, jwtMgr managers.JWTMgr) *AuthService {
	return &AuthService{
		users:       users,
		passwordMgr: passwordMgr,
		jwtMgr:      jwtMgr,
		now:         time.Now,
	}
}

// Register creates a new active user. Both the email and the username must be unused.
func (s *AuthService) Register(ctx context.Context, email, username, password string) (*schemas.User, error) {
	if err := ensureAbsent(s.users.FindByEmail(ctx, email)); err != nil {
		return nil, err
	}
	if err := ensureAbsent(s.users.FindByUsername(ctx, username)); err != nil {
		return nil, err
	}

	hashedPassword, err := s.passwordMgr.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.users.Insert(ctx, email, username, hashedPassword)
	if err != nil {
		// the unique constraints catch registrations racing past the lookups above
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and issues a fresh token pair.
// The active flag is only checked once the password matched.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if user == nil || !s.passwordMgr.VerifyPassword(password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	return s.issueTokens(user, "")
}

// RefreshTokens issues a new access token for the subject of refreshToken.
// The refresh token itself is not rotated and is returned unchanged.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	user, err := s.resolveUser(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(user, refreshToken)
}

// CurrentUser returns the active user the access token belongs to.
// Every token or subject failure is reported as ErrTokenInvalid.
func (s *AuthService) CurrentUser(ctx context.Context, accessToken string) (*schemas.User, error) {
	return s.resolveUser(ctx, accessToken)
}

// ensureAbsent turns the result of a directory lookup into ErrDuplicateUser when a user was found.
func ensureAbsent(user *schemas.User, err error) error {
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return err
	}
	if user != nil {
		return ErrDuplicateUser
	}
	return nil
}

func (s *AuthService) resolveUser(ctx context.Context, token string) (*schemas.User, error) {
	claims, err := s.jwtMgr.ValidateJWT(token)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	userID, err := SubjectUserID(claims)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	return user, nil
}

// issueTokens signs a new access token and, unless refreshOverride is set, a new refresh token.
func (s *AuthService) issueTokens(user *schemas.User, refreshOverride string) (*TokenPair, error) {
	subject := strconv.FormatInt(user.ID, 10)

	accessToken, err := s.jwtMgr.GenerateAccessToken(jwt.MapClaims{
		"sub":   subject,
		"email": user.Email,
		"iat":   s.now().Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("error generating access token: %w", err)
	}

	refreshToken := refreshOverride
	if refreshToken == "" {
		refreshToken, err = s.jwtMgr.GenerateRefreshToken(jwt.MapClaims{"sub": subject})
		if err != nil {
			return nil, fmt.Errorf("error generating refresh token: %w", err)
		}
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// SubjectUserID parses the numeric user id out of the "sub" claim.
func SubjectUserID(claims jwt.MapClaims) (int64, error) {
	subject, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}
	if subject == "" {
		return 0, errors.New("missing subject")
	}
	return strconv.ParseInt(subject, 10, 64)
}
