package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rendering is tested in-package; actual SMTP delivery needs a live server.

func testMailService(t *testing.T) *smtpMailService {
	t.Helper()
	svc, err := NewSMTPMailService(SMTPConfig{
		Host:       "smtp.example.com",
		Port:       587,
		From:       "no-reply@plann.er",
		FromName:   "plann.er crew",
		AppName:    "plann.er",
		AppBaseURL: "https://api.plann.er/",
	})
	require.NoError(t, err)
	return svc.(*smtpMailService)
}

func TestRenderEmailContainsDestinationDatesAndLink(t *testing.T) {
	svc := testMailService(t)

	html, text, err := svc.renderEmail(confirmMailData{
		Title:     "Confirm your trip to Florianopolis",
		Intro:     "Confirm your trip to Florianopolis from January 1, 2024 until January 3, 2024.",
		ButtonURL: "https://api.plann.er/trips/abc/confirm",
		ButtonTxt: "Confirm Trip",
		AppName:   "plann.er",
		Year:      2024,
	})
	require.NoError(t, err)

	for _, body := range []string{html, text} {
		assert.Contains(t, body, "Florianopolis")
		assert.Contains(t, body, "January 1, 2024")
		assert.Contains(t, body, "January 3, 2024")
		assert.Contains(t, body, "https://api.plann.er/trips/abc/confirm")
	}
}

func TestFormatFromHeader(t *testing.T) {
	svc := testMailService(t)
	assert.Equal(t, "plann.er crew <no-reply@plann.er>", svc.formatFromHeader())

	svc.cfg.FromName = ""
	assert.Equal(t, "no-reply@plann.er", svc.formatFromHeader())
}
