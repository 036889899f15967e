package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-server/internal/schemas"
	"calendar-server/internal/services"
	"calendar-server/internal/utils"
)

// RequireAuth resolves the bearer token of the request and stores the AuthContext
// under utils.AuthContextKey. Resolution failures abort with 401, 404 or 403.
func RequireAuth(resolver services.ContextResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := utils.BearerToken(c)
		if !ok {
			utils.WriteAndLogError(c, schemas.Unauthorized, http.StatusUnauthorized, errors.New("missing bearer token"))
			return
		}

		authCtx, err := resolver.Resolve(c, token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken):
				utils.WriteAndLogError(c, schemas.InvalidToken, http.StatusUnauthorized, err)
			case errors.Is(err, services.ErrUserNotFound):
				utils.WriteAndLogError(c, schemas.UserNotFound, http.StatusNotFound, err)
			case errors.Is(err, services.ErrInactiveUser):
				utils.WriteAndLogError(c, schemas.UserInactive, http.StatusForbidden, err)
			default:
				utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
			}
			return
		}

		utils.LogMessageWithFields(c, "debug", "Request authenticated")
		c.Set(utils.AuthContextKey.String(), authCtx)
		c.Next()
	}
}

// CurrentAuth returns the identity stored by RequireAuth.
func CurrentAuth(c *gin.Context) *services.AuthContext {
	return c.MustGet(utils.AuthContextKey.String()).(*services.AuthContext)
}
