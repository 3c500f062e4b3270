package middleware

import (
	"net/http"
	"time"

	"retailnexa_site/config"
	"retailnexa_site/services/i18n"

	"github.com/labstack/echo/v4"
)

const (
	langParam  = "lang"
	langCookie = "lang"
	localeKey  = "locale"
)

// Locale middleware handles language detection and persistence.
// Priority:
// 1. Query param "lang" (sets cookie)
// 2. Cookie "lang"
// 3. Accept-Language header
// 4. Default ("en")
func Locale(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var lang string
			if q := c.QueryParam(langParam); q != "" {
				lang = i18n.Match(q)
				SetLanguageCookie(c, cfg, lang)
			} else if cookie, err := c.Cookie(langCookie); err == nil && i18n.IsSupported(cookie.Value) {
				lang = cookie.Value
			} else {
				lang = i18n.Match(c.Request().Header.Get("Accept-Language"))
			}

			c.Set(localeKey, lang)
			c.SetRequest(c.Request().WithContext(i18n.WithLocale(c.Request().Context(), lang)))

			return next(c)
		}
	}
}

// SetLanguageCookie persists lang for a year
func SetLanguageCookie(c echo.Context, cfg *config.Config, lang string) {
	c.SetCookie(&http.Cookie{
		Name:     langCookie,
		Value:    lang,
		Expires:  time.Now().Add(24 * 365 * time.Hour),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cfg != nil && cfg.IsProduction(),
	})
}

// GetLocale returns the current locale from context
func GetLocale(c echo.Context) string {
	if lang, ok := c.Get(localeKey).(string); ok && lang != "" {
		return lang
	}
	return i18n.DefaultLang
}
