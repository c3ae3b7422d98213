package notifiers

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"net/smtp"
	"strings"
	texttemplate "text/template"

	"github.com/KingOfTheAce2/Tweede-Kamer-Ingest/models"
)

//go:embed templates/alert.txt templates/alert.html
var emailTemplates embed.FS

var funcs = map[string]any{
	"join": strings.Join,
}

// The HTML body goes through html/template so payload content is escaped;
// the text body does not need escaping.
var (
	textTemplate = texttemplate.Must(
		texttemplate.New("alert.txt").Funcs(funcs).ParseFS(emailTemplates, "templates/alert.txt"))
	htmlTemplate = htmltemplate.Must(
		htmltemplate.New("alert.html").Funcs(funcs).ParseFS(emailTemplates, "templates/alert.html"))
)

type Mailer struct {
	smtpHost string
	smtpPort string
	from     string
	password string
}

func NewMailer(smtpHost, smtpPort, from, password string) *Mailer {
	return &Mailer{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		from:     from,
		password: password,
	}
}

// AlertEmail renders one user's payload into a mail with a plain-text and
// an HTML body.
func (h *Mailer) AlertEmail(to string, payload *models.Payload) (models.Email, error) {
	var text bytes.Buffer
	if err := textTemplate.ExecuteTemplate(&text, "alert.txt", payload); err != nil {
		return models.Email{}, fmt.Errorf("render alert text template: %w", err)
	}

	var html bytes.Buffer
	if err := htmlTemplate.ExecuteTemplate(&html, "alert.html", payload); err != nil {
		return models.Email{}, fmt.Errorf("render alert html template: %w", err)
	}

	return models.Email{
		To:       to,
		Subject:  payload.Subject,
		TextBody: text.String(),
		HTMLBody: html.String(),
	}, nil
}

const mimeBoundary = "opentk-alert-boundary"

func (h *Mailer) Send(mail models.Email) error {
	message := fmt.Sprintf(`From: opentk <%s>
To: %s
Subject: %s
MIME-Version: 1.0
Content-Type: multipart/alternative; boundary=%q

--%s
Content-Type: text/plain; charset=UTF-8

%s
--%s
Content-Type: text/html; charset=UTF-8

%s
--%s--`, h.from, mail.To, mail.Subject, mimeBoundary,
		mimeBoundary, mail.TextBody, mimeBoundary, mail.HTMLBody, mimeBoundary)

	// An empty password means the relay takes mail without authentication.
	var auth smtp.Auth
	if h.password != "" {
		auth = smtp.PlainAuth("", h.from, h.password, h.smtpHost)
	}

	addr := fmt.Sprintf("%s:%s", h.smtpHost, h.smtpPort)
	err := smtp.SendMail(addr, auth, h.from, []string{mail.To}, []byte(message))
	if err != nil {
		slog.Error("Failed to send email", "error", err)
		return err
	}

	slog.Info("email sent", "recipient", mail.To, "subject", mail.Subject)
	return nil
}
