package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNonce(t *testing.T) {
	nonce1, err := GenerateNonce()
	assert.NoError(t, err)
	assert.NotEmpty(t, nonce1)

	nonce2, err := GenerateNonce()
	assert.NoError(t, err)
	assert.NotEqual(t, nonce1, nonce2)
}

func TestCSPNonce(t *testing.T) {
	e := echo.New()

	t.Run("SetsContextAndHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := CSPNonce()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))

		nonce, ok := c.Get(string(NonceKey)).(string)
		require.True(t, ok)
		assert.NotEmpty(t, nonce)
		assert.Equal(t, nonce, GetNonce(c.Request().Context()))

		csp := rec.Header().Get("Content-Security-Policy")
		assert.Contains(t, csp, "'nonce-"+nonce+"'")
		assert.Contains(t, csp, "https://cdn.tailwindcss.com")
		assert.Contains(t, csp, "form-action 'self' mailto:")
		assert.NotContains(t, csp, "unsafe-eval")
	})

	t.Run("FreshNoncePerRequest", func(t *testing.T) {
		var seen []string
		handler := CSPNonce()(func(c echo.Context) error {
			seen = append(seen, GetNonce(c.Request().Context()))
			return nil
		})
		for i := 0; i < 2; i++ {
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			require.NoError(t, handler(c))
		}
		require.Len(t, seen, 2)
		assert.NotEqual(t, seen[0], seen[1])
	})
}

func TestGetNonce(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), NonceKey, "test-nonce")
		assert.Equal(t, "test-nonce", GetNonce(ctx))
	})

	t.Run("NotExists", func(t *testing.T) {
		assert.Equal(t, "", GetNonce(context.Background()))
	})
}
