package utils

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"calendar-server/internal/schemas"
)

// WriteAndLogResponse encodes the response object to JSON and writes it with the provided status code.
func WriteAndLogResponse(ctx *gin.Context, response interface{}, statusCode int) {
	LogMessageWithFields(ctx, "info", "Returning response")
	ctx.JSON(statusCode, response)
}

// WriteAndLogError logs the provided error and aborts the request with the given status code and error details.
func WriteAndLogError(c *gin.Context, customErr *schemas.CustomError, statusCode int, err error) {
	if err != nil {
		LogMessageWithFieldsAndError(c, "error", "Error occurred", err)
	}
	LogMessageWithFields(c, "error", "Returning "+customErr.Code+" / "+customErr.Message)
	errorDto := &schemas.ErrorDTO{
		Error: *customErr,
	}
	c.AbortWithStatusJSON(statusCode, errorDto)
}

// ParseIdParam reads the numeric id routing parameter. A missing or malformed id writes a 400 response.
func ParseIdParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(IdParamKey), 10, 64)
	if err != nil || id <= 0 {
		WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
		return 0, false
	}
	return id, true
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively. ok is false when the header is missing or malformed.
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader(schemas.AuthorizationHeader)
	if len(header) <= len(schemas.BearerPrefix) || !strings.EqualFold(header[:len(schemas.BearerPrefix)], schemas.BearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(schemas.BearerPrefix):])
	return token, token != ""
}
