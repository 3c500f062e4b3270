package main

import (
	"bytes"
	"strings"
	"testing"

	"retailnexa_site/models"
	"retailnexa_site/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLeadLink(t *testing.T) {
	out, err := execute("--name", "Jane Doe", "--email", "jane@store.com", "--business", "Corner Market")
	require.NoError(t, err)

	want, err := services.SubmitLead(models.LeadForm{
		FullName:     "Jane Doe",
		Email:        "jane@store.com",
		BusinessName: "Corner Market",
		Locations:    models.DefaultLocations,
		RequestType:  models.RequestTypeDemo,
	}, "retailnexa.ai@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, want.MailtoHref+"\n", out)
}

func TestLeadLinkShow(t *testing.T) {
	out, err := execute("-n", "Jane", "-e", "jane@store.com", "-t", "Early Access", "--to", "sales@example.com", "--show")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Subject: Early Access request — Retail business\n\n"))
	assert.Contains(t, out, "Request Type: Early Access\nName: Jane\n")
	assert.Contains(t, out, "mailto:sales@example.com?subject=Early%20Access%20request")
}

func TestLeadLinkValidation(t *testing.T) {
	_, err := execute("--email", "jane@store.com")
	require.Error(t, err)
	assert.Equal(t, "Please enter your name.", err.Error())

	_, err = execute("--name", "Jane")
	require.Error(t, err)
	assert.Equal(t, "Please enter your email.", err.Error())
}

func TestLeadLinkRejectsArgs(t *testing.T) {
	_, err := execute("extra")
	assert.Error(t, err)
}
