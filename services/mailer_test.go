package services

import (
	"strings"
	"testing"
)

func TestNewMailerFromEnvWithoutCredentials(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("SMTP_USER", "")
	t.Setenv("SMTP_PASS", "")

	m := NewMailerFromEnv()
	if m.Enabled() {
		t.Error("mailer should be disabled without SMTP credentials")
	}
	// Sends are skipped, not errors, so report creation never fails on mail.
	if err := m.SendReportEmail("someone@example.com", "subject", ReportEmailData{}); err != nil {
		t.Errorf("disabled mailer returned error: %v", err)
	}
}

func TestNewMailerFromEnvInvalidPort(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "not-a-port")
	t.Setenv("SMTP_USER", "user")
	t.Setenv("SMTP_PASS", "pass")

	if NewMailerFromEnv().Enabled() {
		t.Error("mailer should be disabled with an invalid port")
	}
}

func TestNewMailerFromEnvConfigured(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SMTP_USER", "user")
	t.Setenv("SMTP_PASS", "pass")
	t.Setenv("SMTP_FROM", "noreply@maduraiclean.in")

	if !NewMailerFromEnv().Enabled() {
		t.Error("mailer should be enabled with full SMTP configuration")
	}
}

func TestBuildReportBody(t *testing.T) {
	body := BuildReportBody(ReportEmailData{
		Category:    "Garbage Pile",
		Urgency:     "high",
		Description: "Large garbage accumulation near the East Tower.",
		Lat:         9.9195,
		Lng:         78.1215,
		WardName:    "Meenakshi Amman Temple Area",
	})

	for _, want := range []string{
		"Garbage Pile",
		"HIGH",
		"Large garbage accumulation near the East Tower.",
		"Meenakshi Amman Temple Area",
		"9.9195, 78.1215",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("email body missing %q", want)
		}
	}
}
