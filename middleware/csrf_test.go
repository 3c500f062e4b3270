package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCSRFToken(t *testing.T) {
	e := echo.New()

	t.Run("TokenExists", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set("csrf", "test-csrf-token")
		assert.Equal(t, "test-csrf-token", GetCSRFToken(c))
	})

	t.Run("TokenMissing", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		assert.Equal(t, "", GetCSRFToken(c))
	})

	t.Run("TokenInvalidType", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set("csrf", 123)
		assert.Equal(t, "", GetCSRFToken(c))
	})
}

func TestCSRF(t *testing.T) {
	e := echo.New()
	e.Use(CSRF(false))
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetCSRFToken(c))
	})
	e.POST("/lead", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.POST("/api/lead", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	t.Run("FormPostWithoutToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/lead", strings.NewReader("fullName=x"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.NotEqual(t, http.StatusOK, rec.Code)
	})

	t.Run("FormPostWithToken", func(t *testing.T) {
		get := httptest.NewRecorder()
		e.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, get.Code)
		token := get.Body.String()
		require.NotEmpty(t, token)

		var cookie *http.Cookie
		for _, ck := range get.Result().Cookies() {
			if ck.Name == "_csrf" {
				cookie = ck
			}
		}
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

		form := url.Values{CSRFFormField: {token}}
		req := httptest.NewRequest(http.MethodPost, "/lead", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("APISkipped", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/lead", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
