package services

import (
	"errors"
	"strings"
	"testing"

	"retailnexa_site/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRecipient = "retailnexa.ai@gmail.com"

func janeDoe() models.LeadForm {
	return models.LeadForm{
		FullName:    "Jane Doe",
		Email:       "jane@store.com",
		RequestType: models.RequestTypeDemo,
	}
}

func TestValidateLeadForm(t *testing.T) {
	tests := []struct {
		name     string
		form     models.LeadForm
		expected error
	}{
		{"Valid", janeDoe(), nil},
		{"MissingName", models.LeadForm{Email: "jane@store.com"}, ErrMissingName},
		{"WhitespaceName", models.LeadForm{FullName: " \t\n", Email: "jane@store.com"}, ErrMissingName},
		{"MissingBoth", models.LeadForm{}, ErrMissingName},
		{"MissingEmail", models.LeadForm{FullName: "Jane"}, ErrMissingEmail},
		{"WhitespaceEmail", models.LeadForm{FullName: "Jane", Email: "   "}, ErrMissingEmail},
		{"EmailShapeNotChecked", models.LeadForm{FullName: "Jane", Email: "not-an-email"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLeadForm(tt.form)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestBuildLeadSubject(t *testing.T) {
	form := janeDoe()
	assert.Equal(t, "Demo request — Retail business", BuildLeadSubject(form))

	form.RequestType = models.RequestTypeEarlyAccess
	form.BusinessName = "Corner Mart"
	assert.Equal(t, "Early Access request — Corner Mart", BuildLeadSubject(form))
}

func TestBuildLeadBody(t *testing.T) {
	t.Run("EmptyOptionalFields", func(t *testing.T) {
		body := BuildLeadBody(janeDoe())
		expected := "Request Type: Demo\nName: Jane Doe\nBusiness: -\nEmail: jane@store.com\nPhone: -\nLocations: -\nPOS: -\n\nNotes:\n-"
		assert.Equal(t, expected, body)
	})

	t.Run("AllFieldsSet", func(t *testing.T) {
		form := models.LeadForm{
			FullName:     "Sam Patel",
			BusinessName: "Patel Fuel",
			Email:        "sam@patelfuel.com",
			Phone:        "+1 (555) 010-2030",
			Locations:    "4-10",
			POS:          "NRS",
			RequestType:  models.RequestTypeEarlyAccess,
			Message:      "Deposit reconciliation\nShrinkage alerts",
		}
		lines := strings.Split(BuildLeadBody(form), "\n")
		assert.Equal(t, []string{
			"Request Type: Early Access",
			"Name: Sam Patel",
			"Business: Patel Fuel",
			"Email: sam@patelfuel.com",
			"Phone: +1 (555) 010-2030",
			"Locations: 4-10",
			"POS: NRS",
			"",
			"Notes:",
			"Deposit reconciliation",
			"Shrinkage alerts",
		}, lines)
	})

	t.Run("EightLabeledLinesInOrder", func(t *testing.T) {
		form := janeDoe()
		form.Locations = "1"
		lines := strings.Split(BuildLeadBody(form), "\n")
		labels := []string{"Request Type:", "Name:", "Business:", "Email:", "Phone:", "Locations:", "POS:", "Notes:"}
		var labeled []string
		for _, line := range lines {
			for _, label := range labels {
				if strings.HasPrefix(line, label) {
					labeled = append(labeled, label)
				}
			}
		}
		assert.Equal(t, labels, labeled)
	})

	t.Run("WhitespaceOptionalFieldKept", func(t *testing.T) {
		form := janeDoe()
		form.Phone = " "
		assert.Contains(t, BuildLeadBody(form), "\nPhone:  \n")
	})
}

func TestSubmitLead(t *testing.T) {
	t.Run("Example", func(t *testing.T) {
		submission, err := SubmitLead(janeDoe(), testRecipient)
		require.NoError(t, err)

		assert.Equal(t, "Demo request — Retail business", submission.Subject)
		assert.True(t, strings.HasPrefix(submission.Body, "Request Type: Demo\nName: Jane Doe\nBusiness: -\nEmail: jane@store.com\nPhone: -\nLocations: -\nPOS: -\n\nNotes:\n-"))
		assert.Equal(t,
			"mailto:retailnexa.ai@gmail.com"+
				"?subject=Demo%20request%20%E2%80%94%20Retail%20business"+
				"&body=Request%20Type%3A%20Demo%0AName%3A%20Jane%20Doe%0ABusiness%3A%20-%0AEmail%3A%20jane%40store.com"+
				"%0APhone%3A%20-%0ALocations%3A%20-%0APOS%3A%20-%0A%0ANotes%3A%0A-",
			submission.MailtoHref)
	})

	t.Run("MissingNameProducesNoURI", func(t *testing.T) {
		submission, err := SubmitLead(models.LeadForm{Email: "jane@store.com"}, testRecipient)
		assert.ErrorIs(t, err, ErrMissingName)
		assert.Nil(t, submission)
	})

	t.Run("MissingEmail", func(t *testing.T) {
		submission, err := SubmitLead(models.LeadForm{FullName: "Jane"}, testRecipient)
		assert.ErrorIs(t, err, ErrMissingEmail)
		assert.Nil(t, submission)
	})

	t.Run("Idempotent", func(t *testing.T) {
		form := janeDoe()
		form.Message = "Inventory reorders & phone agent"
		first, err := SubmitLead(form, testRecipient)
		require.NoError(t, err)
		second, err := SubmitLead(form, testRecipient)
		require.NoError(t, err)
		assert.Equal(t, first.MailtoHref, second.MailtoHref)
	})

	t.Run("RawValuesKept", func(t *testing.T) {
		form := janeDoe()
		form.FullName = "  Jane Doe  "
		submission, err := SubmitLead(form, testRecipient)
		require.NoError(t, err)
		assert.Contains(t, submission.Body, "Name:   Jane Doe  \n")
	})
}

func TestNormalizeLeadForm(t *testing.T) {
	form := models.LeadForm{
		FullName:    "Jane",
		Message:     "one\r\ntwo\rthree",
		RequestType: "Partnership",
	}

	normalized := NormalizeLeadForm(form)
	assert.Equal(t, "one\ntwo\nthree", normalized.Message)
	assert.Equal(t, models.RequestTypeDemo, normalized.RequestType)
	assert.Equal(t, "Jane", normalized.FullName)

	form.RequestType = models.RequestTypeEarlyAccess
	assert.Equal(t, models.RequestTypeEarlyAccess, NormalizeLeadForm(form).RequestType)

	form.RequestType = ""
	assert.Equal(t, models.RequestTypeDemo, NormalizeLeadForm(form).RequestType)
}

func TestLeadErrorKey(t *testing.T) {
	key, field := LeadErrorKey(ErrMissingName)
	assert.Equal(t, "lead.error.name", key)
	assert.Equal(t, "fullName", field)

	key, field = LeadErrorKey(ErrMissingEmail)
	assert.Equal(t, "lead.error.email", key)
	assert.Equal(t, "email", field)

	key, field = LeadErrorKey(errors.New("boom"))
	assert.Equal(t, "lead.error.generic", key)
	assert.Empty(t, field)
}
