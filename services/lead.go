package services

import (
	"errors"
	"strings"

	"retailnexa_site/models"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrMissingName is returned when the full name is empty after trimming
	ErrMissingName = errors.New("lead: missing name")
	// ErrMissingEmail is returned when the email is empty after trimming
	ErrMissingEmail = errors.New("lead: missing email")
)

const (
	// DefaultBusinessName stands in for an empty business name in the subject
	DefaultBusinessName = "Retail business"
	// EmptyFieldPlaceholder stands in for any empty optional field in the body
	EmptyFieldPlaceholder = "-"
)

// leadRequirements is the trimmed projection of a LeadForm that gets
// validated. Field order is the order the checks are reported in.
type leadRequirements struct {
	FullName string `validate:"required"`
	Email    string `validate:"required"`
}

var leadValidator = validator.New()

// NormalizeLeadForm cleans up what a browser posts before validation:
// CRLF line breaks (HTML form encoding) become LF and a request type outside
// the offered options falls back to Demo. Values are otherwise untouched.
func NormalizeLeadForm(form models.LeadForm) models.LeadForm {
	form.FullName = normalizeNewlines(form.FullName)
	form.BusinessName = normalizeNewlines(form.BusinessName)
	form.Email = normalizeNewlines(form.Email)
	form.Phone = normalizeNewlines(form.Phone)
	form.Locations = normalizeNewlines(form.Locations)
	form.POS = normalizeNewlines(form.POS)
	form.Message = normalizeNewlines(form.Message)
	if !models.IsValidRequestType(form.RequestType) {
		form.RequestType = models.RequestTypeDemo
	}
	return form
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// ValidateLeadForm checks the required fields in order: name, then email.
// Only emptiness after trimming is checked, never the shape of the email.
func ValidateLeadForm(form models.LeadForm) error {
	req := leadRequirements{
		FullName: strings.TrimSpace(form.FullName),
		Email:    strings.TrimSpace(form.Email),
	}

	err := leadValidator.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	switch verrs[0].Field() {
	case "FullName":
		return ErrMissingName
	case "Email":
		return ErrMissingEmail
	}
	return err
}

// BuildLeadSubject returns "<type> request — <business or Retail business>"
func BuildLeadSubject(form models.LeadForm) string {
	return form.RequestType + " request — " + orDefault(form.BusinessName, DefaultBusinessName)
}

// BuildLeadBody returns the labeled, newline-joined body of the lead email.
// Empty optional fields are written as "-".
func BuildLeadBody(form models.LeadForm) string {
	lines := []string{
		"Request Type: " + form.RequestType,
		"Name: " + form.FullName,
		"Business: " + orDefault(form.BusinessName, EmptyFieldPlaceholder),
		"Email: " + form.Email,
		"Phone: " + orDefault(form.Phone, EmptyFieldPlaceholder),
		"Locations: " + orDefault(form.Locations, EmptyFieldPlaceholder),
		"POS: " + orDefault(form.POS, EmptyFieldPlaceholder),
		"",
		"Notes:",
		orDefault(form.Message, EmptyFieldPlaceholder),
	}
	return strings.Join(lines, "\n")
}

// SubmitLead validates the form and builds the mailto handoff addressed to
// recipient. Nothing is sent or stored; the same form always yields the same
// submission.
func SubmitLead(form models.LeadForm, recipient string) (*models.LeadSubmission, error) {
	if err := ValidateLeadForm(form); err != nil {
		return nil, err
	}

	subject := BuildLeadSubject(form)
	body := BuildLeadBody(form)

	return &models.LeadSubmission{
		Subject:    subject,
		Body:       body,
		MailtoHref: BuildMailtoHref(recipient, subject, body),
	}, nil
}

// LeadErrorKey maps a submission error to its translation key and the form
// field it belongs to. Unknown errors map to a generic message.
func LeadErrorKey(err error) (key, field string) {
	switch {
	case errors.Is(err, ErrMissingName):
		return "lead.error.name", "fullName"
	case errors.Is(err, ErrMissingEmail):
		return "lead.error.email", "email"
	default:
		return "lead.error.generic", ""
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
