package handlers

import (
	"net/http"
	"time"

	"retailnexa_site/middleware"
	"retailnexa_site/models"
	"retailnexa_site/services/i18n"
	"retailnexa_site/templates"
	"retailnexa_site/templates/layouts"
	"retailnexa_site/templates/pages"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// LandingHandler renders the marketing page with an empty lead form
func LandingHandler(c echo.Context) error {
	return render(c, http.StatusOK, landingPage(c, leadFormView(c, models.NewLeadForm())))
}

func leadFormView(c echo.Context, form models.LeadForm) models.LeadFormView {
	return models.LeadFormView{
		Form:         form,
		CSRFToken:    middleware.GetCSRFToken(c),
		ContactEmail: getConfig(c).ContactEmail,
	}
}

// landingPage wraps the full landing page in the base layout. extra
// components are rendered at the end of the body.
func landingPage(c echo.Context, lead models.LeadFormView, extra ...templ.Component) templ.Component {
	cfg := getConfig(c)
	ctx := c.Request().Context()

	content := pages.Landing(ctx, pages.LandingView{
		Content:     getLanding(c),
		Lead:        lead,
		LinkedInURL: cfg.LinkedInURL,
		Now:         time.Now(),
	})
	body := templ.Join(append([]templ.Component{templates.FromNode(content)}, extra...)...)
	return layouts.Base(LandingSEO(cfg.AppURL, i18n.GetLocale(ctx)), body)
}
