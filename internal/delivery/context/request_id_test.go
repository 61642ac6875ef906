package context

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRequestID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "caller id kept", header: "req-123", keep: true},
		{name: "128 bytes kept", header: strings.Repeat("a", 128), keep: true},
		{name: "empty replaced", header: ""},
		{name: "oversized replaced", header: strings.Repeat("a", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRequestID(tt.header)
			if tt.keep {
				assert.Equal(t, tt.header, got)

				return
			}
			_, err := ulid.ParseStrict(got)
			assert.NoError(t, err)
		})
	}
}

func TestGetRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	fallback := GetRequestID(c)
	_, err := ulid.ParseStrict(fallback)
	require.NoError(t, err)

	SetRequestID(c, "req-123")
	assert.Equal(t, "req-123", GetRequestID(c))
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-123", GetRequestIDFromContext(WithRequestID(context.Background(), "req-123")))
}
