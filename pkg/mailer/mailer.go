package mailer

import (
	"bytes"
	"context"
	"html/template"
	"path/filepath"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"swea-cms.backend/pkg/logger"
)

// Mailer renders HTML email templates and delivers them over SMTP.
type Mailer struct {
	client      *mail.Client
	sender      string
	senderName  string
	templateDir string
}

// New creates a Mailer. templateDir holds the HTML templates referenced by
// queued send_email tasks.
func New(host string, port int, user, password, senderName, templateDir string) (*Mailer, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(user),
		mail.WithPassword(password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, err
	}
	return &Mailer{
		client:      client,
		sender:      user,
		senderName:  senderName,
		templateDir: templateDir,
	}, nil
}

// Send renders the named template with data and emails it to recipient.
func (m *Mailer) Send(ctx context.Context, recipient, subject, templateName string, data map[string]interface{}) error {
	body, err := m.render(templateName, data)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.senderName, m.sender); err != nil {
		return err
	}
	if err := msg.To(recipient); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		logger.Error(ctx, "Failed to send email",
			zap.String("recipient", recipient),
			zap.String("template", templateName),
			zap.Error(err),
		)
		return err
	}

	logger.Info(ctx, "Email sent", zap.String("recipient", recipient), zap.String("template", templateName))
	return nil
}

func (m *Mailer) render(templateName string, data map[string]interface{}) (string, error) {
	// Base keeps queued payloads from escaping the template directory.
	path := filepath.Join(m.templateDir, filepath.Base(templateName))
	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
