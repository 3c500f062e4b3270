package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"retailnexa_site/config"
	"retailnexa_site/middleware"
	"retailnexa_site/services"
	"retailnexa_site/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var csrfInput = regexp.MustCompile(`name="_csrf" value="([^"]+)"`)

func testServer(t *testing.T, leadLimit int) *echo.Echo {
	t.Helper()
	require.NoError(t, i18n.Load())
	landing, err := services.LoadLanding()
	require.NoError(t, err)

	cfg := &config.Config{
		Environment:   "test",
		AppURL:        "https://retailnexa.example",
		StaticDir:     "../../static",
		ContactEmail:  config.DefaultContactEmail,
		LinkedInURL:   config.DefaultLinkedInURL,
		LeadRateLimit: leadLimit,
	}
	e, limiter := newServer(cfg, landing, zap.NewNop())
	t.Cleanup(limiter.Stop)
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// landingSession loads the page and returns the CSRF token and cookies
func landingSession(t *testing.T, e *echo.Echo) (string, []*http.Cookie) {
	t.Helper()
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	m := csrfInput.FindStringSubmatch(rec.Body.String())
	require.Len(t, m, 2, "csrf token not rendered")
	return m[1], rec.Result().Cookies()
}

func leadRequest(values url.Values, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/lead", strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func TestLandingPage(t *testing.T) {
	e := testServer(t, 10)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	csp := rec.Header().Get("Content-Security-Policy")
	require.Contains(t, csp, "'nonce-")
	nonce := strings.SplitN(strings.SplitN(csp, "'nonce-", 2)[1], "'", 2)[0]
	assert.Contains(t, rec.Body.String(), `nonce="`+nonce+`"`)
	assert.Contains(t, rec.Body.String(), `<html lang="en">`)
}

func TestLanguageSwitch(t *testing.T) {
	e := testServer(t, 10)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/?lang=es", nil))
	assert.Contains(t, rec.Body.String(), `<html lang="es">`)

	var langCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "lang" {
			langCookie = c
		}
	}
	require.NotNil(t, langCookie)
	assert.Equal(t, "es", langCookie.Value)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(langCookie)
	assert.Contains(t, serve(e, req).Body.String(), "Enviar Solicitud")
}

func TestLeadFlow(t *testing.T) {
	e := testServer(t, 10)
	values := url.Values{
		"fullName":    {"Jane Doe"},
		"email":       {"jane@cornermarket.com"},
		"requestType": {"Demo"},
	}

	t.Run("Rejected without CSRF token", func(t *testing.T) {
		rec := serve(e, leadRequest(values, nil))
		assert.NotEqual(t, http.StatusOK, rec.Code)
	})

	t.Run("Accepted with token", func(t *testing.T) {
		token, cookies := landingSession(t, e)
		withToken := url.Values{}
		for k, v := range values {
			withToken[k] = v
		}
		withToken.Set(middleware.CSRFFormField, token)

		rec := serve(e, leadRequest(withToken, cookies))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="lead-fallback"`)
		assert.Contains(t, rec.Body.String(), "window.location.href = ")
	})

	t.Run("Validation error", func(t *testing.T) {
		token, cookies := landingSession(t, e)
		rec := serve(e, leadRequest(url.Values{middleware.CSRFFormField: {token}}, cookies))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please enter your name.")
	})
}

func TestLeadAPI(t *testing.T) {
	e := testServer(t, 2)
	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/lead", strings.NewReader(`{"fullName":"Jane","email":"jane@store.com"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		return serve(e, req)
	}

	rec := post()
	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, strings.HasPrefix(got["mailto"], "mailto:retailnexa.ai@gmail.com?subject=Demo%20request"))

	assert.Equal(t, http.StatusOK, post().Code)
	assert.Equal(t, http.StatusTooManyRequests, post().Code)
}

func TestPublicRoutes(t *testing.T) {
	e := testServer(t, 10)

	tests := []struct {
		path        string
		contentType string
	}{
		{"/health", "text/plain"},
		{"/robots.txt", "text/plain"},
		{"/sitemap.xml", "application/xml"},
		{"/static/css/site.css", "text/css"},
		{"/static/js/site.js", "javascript"},
		{"/static/images/favicon.svg", "image/svg+xml"},
		{"/static/images/og-image.png", "image/png"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(e, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), tt.contentType)
		})
	}

	assert.Equal(t, http.StatusNotFound, serve(e, httptest.NewRequest(http.MethodGet, "/missing", nil)).Code)
}
