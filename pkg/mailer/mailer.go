package mailer

import (
	"bytes"
	"context"
	"errors"
	texttemplate "text/template"
)

// Mailer provides high-level email sending with template rendering.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a new Mailer with the given sender and renderer.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
	}
}

// SendParams contains parameters for sending a templated email.
type SendParams struct {
	To       string // Single recipient
	Template string // Template name without extension (e.g., "contact")
	Data     any    // Template data

	// Optional overrides
	Subject     string       // Override template subject
	Layout      string       // Override default layout
	From        string       // Override default sender
	ReplyTo     string       // Reply-to address
	CC          []string     // Carbon copy
	BCC         []string     // Blind carbon copy
	Tags        Tags         // Provider tags
	Attachments []Attachment // File attachments
}

// Build renders the template and assembles the email without sending it.
// Subject resolution: params.Subject > template metadata > config fallback.
func (m *Mailer) Build(params SendParams) (*Email, error) {
	if params.To == "" {
		return nil, ErrNoRecipient
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	result, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		if fromMeta, ok := result.Subject(); ok {
			subject = fromMeta
		} else {
			subject = m.config.FallbackSubject
		}
	}

	// Subjects are templates too: "New message from {{.Name}}".
	processedSubject, err := ExecuteSubject(subject, params.Data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	return &Email{
		To:          []string{params.To},
		Subject:     processedSubject,
		HTML:        result.HTML,
		Text:        result.Text,
		From:        params.From,
		ReplyTo:     params.ReplyTo,
		CC:          params.CC,
		BCC:         params.BCC,
		Tags:        params.Tags,
		Attachments: params.Attachments,
	}, nil
}

// Send renders a template and sends the email.
// It returns the provider's delivery id, which may be empty.
func (m *Mailer) Send(ctx context.Context, params SendParams) (string, error) {
	email, err := m.Build(params)
	if err != nil {
		return "", err
	}
	return m.send(ctx, email)
}

func (m *Mailer) send(ctx context.Context, email *Email) (string, error) {
	id, err := m.sender.Send(ctx, email)
	if err != nil {
		return "", errors.Join(ErrSendFailed, err)
	}
	return id, nil
}

// ExecuteSubject executes subject as a text template. Values are not escaped.
func ExecuteSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
