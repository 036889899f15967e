package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(header string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	return c, recorder
}

func TestBearerToken(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{name: "Valid", header: "Bearer abc.def.ghi", token: "abc.def.ghi", ok: true},
		{name: "LowercaseScheme", header: "bearer abc", token: "abc", ok: true},
		{name: "Missing", header: "", ok: false},
		{name: "WrongScheme", header: "Basic abc", ok: false},
		{name: "EmptyToken", header: "Bearer    ", ok: false},
		{name: "SchemeOnly", header: "Bearer", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(tc.header)
			token, ok := BearerToken(c)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, token)
		})
	}
}

func TestParseIdParam(t *testing.T) {
	testCases := []struct {
		value  string
		id     int64
		ok     bool
		status int
	}{
		{value: "42", id: 42, ok: true, status: http.StatusOK},
		{value: "abc", ok: false, status: http.StatusBadRequest},
		{value: "0", ok: false, status: http.StatusBadRequest},
		{value: "-3", ok: false, status: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			c, recorder := newTestContext("")
			c.Params = gin.Params{{Key: IdParamKey, Value: tc.value}}

			id, ok := ParseIdParam(c)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.id, id)
			assert.Equal(t, tc.status, recorder.Code)
			if !tc.ok {
				assert.Contains(t, recorder.Body.String(), "ERR-001")
			}
		})
	}
}
