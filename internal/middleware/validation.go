package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-server/internal/schemas"
	"calendar-server/internal/utils"
)

// ValidateStruct binds the JSON body into a fresh T and validates it.
// The payload is stored unchanged under utils.PayloadKey for the handler.
func ValidateStruct[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := new(T)
		if err := c.ShouldBindJSON(obj); err != nil {
			utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
			return
		}

		if err := utils.GetValidator().Validate.Struct(obj); err != nil {
			utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
			return
		}

		c.Set(utils.PayloadKey.String(), obj)
		c.Next()
	}
}

// Payload returns the request body stored by ValidateStruct.
func Payload[T any](c *gin.Context) *T {
	return c.MustGet(utils.PayloadKey.String()).(*T)
}
