package services

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	gomail "gopkg.in/gomail.v2"
)

// ReportEmailData carries the report fields rendered into the email body.
type ReportEmailData struct {
	Category    string
	Urgency     string
	Description string
	Lat         float64
	Lng         float64
	WardName    string
}

// Mailer sends report emails over SMTP. It is constructed once at bootstrap
// and injected into the controllers that need it; an unconfigured Mailer
// skips every send and only logs.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailerFromEnv builds a Mailer from SMTP_HOST, SMTP_PORT, SMTP_USER,
// SMTP_PASS and SMTP_FROM. Missing credentials disable sending entirely.
func NewMailerFromEnv() *Mailer {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	if host == "" || portStr == "" || user == "" || pass == "" {
		return &Mailer{}
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Printf("Invalid SMTP_PORT %q, email sending disabled", portStr)
		return &Mailer{}
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = user
	}

	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

// Enabled reports whether SMTP credentials were configured.
func (m *Mailer) Enabled() bool {
	return m != nil && m.dialer != nil
}

// SendReportEmail delivers one report email. Failures are returned for the
// caller to log; they never fail the request that triggered them.
func (m *Mailer) SendReportEmail(to, subject string, data ReportEmailData) error {
	if !m.Enabled() {
		log.Println("SMTP credentials not configured. Skipping email.")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "Madurai Clean")
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", BuildReportBody(data))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	log.Printf("Email sent to %s", to)
	return nil
}

// BuildReportBody renders the report details table shared by every report
// email (confirmation, officer alert and manual resend).
func BuildReportBody(data ReportEmailData) string {
	row := func(label, value string) string {
		return fmt.Sprintf(
			`<tr><td style="padding: 8px; border-bottom: 1px solid #eee; font-weight: bold;">%s:</td>`+
				`<td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td></tr>`, label, value)
	}

	var b strings.Builder
	b.WriteString(`<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; border: 1px solid #eee; padding: 20px; border-radius: 10px;">`)
	b.WriteString(`<h2 style="color: #10b981;">Madurai Clean - Report Copy</h2>`)
	b.WriteString(`<p>A new civic issue has been reported. Here are the details:</p>`)
	b.WriteString(`<table style="width: 100%; border-collapse: collapse;">`)
	b.WriteString(row("Category", data.Category))
	b.WriteString(row("Urgency", strings.ToUpper(data.Urgency)))
	b.WriteString(row("Ward", data.WardName))
	b.WriteString(row("Description", data.Description))
	b.WriteString(row("Location", fmt.Sprintf("%g, %g", data.Lat, data.Lng)))
	b.WriteString(`</table>`)
	b.WriteString(`<p style="margin-top: 20px; font-size: 12px; color: #666;">This is an automated message from Madurai Clean. Please do not reply to this email.</p>`)
	b.WriteString(`</div>`)
	return b.String()
}
