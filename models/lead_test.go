package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLeadForm(t *testing.T) {
	form := NewLeadForm()

	assert.Equal(t, "1", form.Locations)
	assert.Equal(t, "Demo", form.RequestType)
	assert.Empty(t, form.FullName)
	assert.Empty(t, form.Email)
	assert.Empty(t, form.BusinessName)
	assert.Empty(t, form.Phone)
	assert.Empty(t, form.POS)
	assert.Empty(t, form.Message)
}

func TestIsValidRequestType(t *testing.T) {
	assert.True(t, IsValidRequestType("Demo"))
	assert.True(t, IsValidRequestType("Early Access"))
	assert.False(t, IsValidRequestType(""))
	assert.False(t, IsValidRequestType("demo"))
	assert.False(t, IsValidRequestType("Partnership"))
}

func TestLeadFormViewShowFallbackLink(t *testing.T) {
	assert.False(t, LeadFormView{}.ShowFallbackLink())
	assert.False(t, LeadFormView{Submitted: true}.ShowFallbackLink())
	assert.False(t, LeadFormView{MailtoHref: "mailto:x@y.z"}.ShowFallbackLink())
	assert.True(t, LeadFormView{Submitted: true, MailtoHref: "mailto:x@y.z"}.ShowFallbackLink())
}
