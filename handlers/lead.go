package handlers

import (
	"net/http"
	"strings"

	"retailnexa_site/middleware"
	"retailnexa_site/models"
	"retailnexa_site/services"
	"retailnexa_site/services/i18n"
	"retailnexa_site/templates/components"
	"retailnexa_site/templates/pages"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// leadSubmittedEvent is handled by static/js/site.js, which opens the mail
// client once the fallback link is on screen.
const leadSubmittedEvent = "leadSubmitted"

// LeadPostHandler validates the lead form and hands the request off to the
// visitor's mail client. Nothing is stored or sent from the server.
func LeadPostHandler(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.LoggerFrom(ctx)

	var form models.LeadForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}
	form = services.NormalizeLeadForm(form)
	view := leadFormView(c, form)

	submission, err := services.SubmitLead(form, getConfig(c).ContactEmail)
	if err != nil {
		key, field := services.LeadErrorKey(err)
		view.Error = i18n.T(ctx, key)
		view.ErrorField = field
		logger.Info("lead rejected", zap.String("field", field), zap.Error(err))

		if isHTMX(c) {
			return render(c, http.StatusUnprocessableEntity, pages.LeadForm(ctx, view))
		}
		return render(c, http.StatusUnprocessableEntity, landingPage(c, view))
	}

	view.Submitted = true
	view.MailtoHref = submission.MailtoHref
	logger.Info("lead handed off",
		zap.String("request_type", form.RequestType),
		zap.String("locations", form.Locations),
		zap.String("pos", form.POS),
	)

	if isHTMX(c) {
		if err := triggerAfterSwap(c, leadSubmittedEvent, map[string]string{"mailto": submission.MailtoHref}); err != nil {
			return err
		}
		return render(c, http.StatusOK, pages.LeadForm(ctx, view))
	}
	return render(c, http.StatusOK, landingPage(c, view, components.MailtoRedirect(submission.MailtoHref)))
}

// LeadErrorResponse is the 422 body of the JSON lead API
type LeadErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// LeadAPIHandler is the JSON variant of the lead form: it returns the
// subject, body and mailto URI instead of redirecting.
func LeadAPIHandler(c echo.Context) error {
	ctx := c.Request().Context()

	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, "Content-Type must be application/json")
	}

	var form models.LeadForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	form = services.NormalizeLeadForm(form)

	submission, err := services.SubmitLead(form, getConfig(c).ContactEmail)
	if err != nil {
		key, field := services.LeadErrorKey(err)
		return c.JSON(http.StatusUnprocessableEntity, LeadErrorResponse{
			Error: i18n.T(ctx, key),
			Field: field,
		})
	}

	middleware.LoggerFrom(ctx).Info("lead link built", zap.String("request_type", form.RequestType))
	return c.JSON(http.StatusOK, submission)
}
