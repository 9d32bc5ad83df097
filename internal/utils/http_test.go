package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestParseLimit(t *testing.T) {
	testCases := []struct {
		name     string
		target   string
		expected int64
	}{
		{name: "Missing falls back to default", target: "/api/chat", expected: 25},
		{name: "Valid limit", target: "/api/chat?limit=5", expected: 5},
		{name: "Malformed falls back to default", target: "/api/chat?limit=abc", expected: 25},
		{name: "Non-positive falls back to default", target: "/api/chat?limit=-3", expected: 25},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestContext(tc.target)
			assert.Equal(t, tc.expected, ParseLimit(c, 25))
		})
	}
}

func TestErrorResponseHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := ServiceUnavailableResponse(c, "Database not configured")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Database not configured")
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
