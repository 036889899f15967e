// Package handlers contains the gin handlers of the auth, events and todos services.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-server/internal/middleware"
	"calendar-server/internal/schemas"
	"calendar-server/internal/services"
	"calendar-server/internal/utils"
)

type AuthHdl interface {
	RegisterUser(c *gin.Context)
	LoginUser(c *gin.Context)
	RefreshToken(c *gin.Context)
	GetCurrentUser(c *gin.Context)
	LogoutUser(c *gin.Context)
}

type AuthHandler struct {
	AuthService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) AuthHdl {
	return &AuthHandler{AuthService: authService}
}

// RegisterUser creates a new user from a validated RegistrationRequest.
func (handler *AuthHandler) RegisterUser(c *gin.Context) {
	req := middleware.Payload[schemas.RegistrationRequest](c)

	user, err := handler.AuthService.Register(c, req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			utils.WriteAndLogError(c, schemas.UserAlreadyExists, http.StatusBadRequest, err)
			return
		}
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	utils.WriteAndLogResponse(c, schemas.NewUserDTO(user), http.StatusOK)
}

// LoginUser checks the credentials and returns a fresh token pair.
func (handler *AuthHandler) LoginUser(c *gin.Context) {
	req := middleware.Payload[schemas.LoginRequest](c)

	pair, err := handler.AuthService.Login(c, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.WriteAndLogError(c, schemas.InvalidCredentials, http.StatusUnauthorized, err)
		case errors.Is(err, services.ErrInactiveUser):
			utils.WriteAndLogError(c, schemas.UserInactive, http.StatusForbidden, err)
		default:
			utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		}
		return
	}

	utils.WriteAndLogResponse(c, newTokenPairDTO(pair), http.StatusOK)
}

// RefreshToken issues a new access token for the refresh token sent as bearer credentials.
func (handler *AuthHandler) RefreshToken(c *gin.Context) {
	token, ok := utils.BearerToken(c)
	if !ok {
		utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized, errors.New("missing bearer token"))
		return
	}

	pair, err := handler.AuthService.RefreshTokens(c, token)
	if err != nil {
		writeTokenError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, newTokenPairDTO(pair), http.StatusOK)
}

// GetCurrentUser returns the user the bearer access token belongs to.
func (handler *AuthHandler) GetCurrentUser(c *gin.Context) {
	token, ok := utils.BearerToken(c)
	if !ok {
		utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized, errors.New("missing bearer token"))
		return
	}

	user, err := handler.AuthService.CurrentUser(c, token)
	if err != nil {
		writeTokenError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, schemas.NewUserDTO(user), http.StatusOK)
}

// LogoutUser only acknowledges the request. Tokens are stateless, the client drops them.
func (handler *AuthHandler) LogoutUser(c *gin.Context) {
	utils.WriteAndLogResponse(c, &schemas.MessageDTO{Message: schemas.LogoutSuccessMessage}, http.StatusOK)
}

func writeTokenError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTokenInvalid):
		utils.WriteAndLogError(c, schemas.InvalidToken, http.StatusUnauthorized, err)
	case errors.Is(err, services.ErrInactiveUser):
		utils.WriteAndLogError(c, schemas.UserInactive, http.StatusForbidden, err)
	default:
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
	}
}

func newTokenPairDTO(pair *services.TokenPair) *schemas.TokenPairDTO {
	return &schemas.TokenPairDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    schemas.BearerTokenType,
	}
}
