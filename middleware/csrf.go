package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CSRFFormField is the hidden input name carrying the token
const CSRFFormField = "_csrf"

// GetCSRFToken retrieves the CSRF token from the Echo context
// This token should be included in forms and AJAX requests
func GetCSRFToken(c echo.Context) string {
	token := c.Get(middleware.DefaultCSRFConfig.ContextKey)
	if tokenStr, ok := token.(string); ok {
		return tokenStr
	}
	return ""
}

// CSRF guards the HTML form routes. Paths under /api/ accept JSON only and
// are skipped.
func CSRF(secure bool) echo.MiddlewareFunc {
	return middleware.CSRFWithConfig(middleware.CSRFConfig{
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/api/")
		},
		TokenLookup:    "header:" + echo.HeaderXCSRFToken + ",form:" + CSRFFormField,
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: http.SameSiteStrictMode,
	})
}
