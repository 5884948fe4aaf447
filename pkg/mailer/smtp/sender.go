// Package smtp implements mailer.Sender over SMTP using go-mail.
package smtp

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/dmitrymomot/folio/pkg/mailer"
)

// Sender implements mailer.Sender by dialing the configured SMTP server for
// every message.
type Sender struct {
	config Config
}

// New creates a new SMTP sender.
func New(cfg Config) *Sender {
	return &Sender{config: cfg}
}

// Send implements mailer.Sender. The returned id is the generated Message-ID
// without angle brackets. Tags have no SMTP equivalent and are ignored.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	client, err := s.client()
	if err != nil {
		return "", err
	}

	msg, err := s.buildMsg(email)
	if err != nil {
		return "", err
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return "", fmt.Errorf("smtp: failed to send: %w", err)
	}

	return messageID(msg), nil
}

// Check implements mailer.Checker by opening and closing a connection.
func (s *Sender) Check(ctx context.Context) error {
	client, err := s.client()
	if err != nil {
		return err
	}
	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp: dial %s: %w", s.config.Host, err)
	}
	return client.Close()
}

func (s *Sender) client() (*mail.Client, error) {
	if s.config.Host == "" {
		return nil, fmt.Errorf("smtp: %w: host is empty", mailer.ErrNotConfigured)
	}

	opts := []mail.Option{mail.WithPort(s.config.Port)}
	if s.config.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.config.Timeout))
	}

	if s.config.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.config.Username),
			mail.WithPassword(s.config.Password),
		)
	}

	switch strings.ToLower(s.config.TLS) {
	case TLSMandatory, "":
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	case TLSOpportunistic:
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSOpportunistic))
	case TLSImplicit:
		opts = append(opts, mail.WithSSL())
	case TLSNone:
		opts = append(opts, mail.WithTLSPortPolicy(mail.NoTLS))
	default:
		return nil, fmt.Errorf("smtp: %w: unknown tls policy %q", mailer.ErrNotConfigured, s.config.TLS)
	}

	client, err := mail.NewClient(s.config.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp: failed to create client: %w", err)
	}
	return client, nil
}

func (s *Sender) buildMsg(email *mailer.Email) (*mail.Msg, error) {
	if len(email.To) == 0 {
		return nil, mailer.ErrNoRecipient
	}
	if email.HTML == "" && email.Text == "" {
		return nil, mailer.ErrNoContent
	}

	msg := mail.NewMsg()

	if email.From != "" {
		if err := msg.From(email.From); err != nil {
			return nil, fmt.Errorf("smtp: invalid from address: %w", err)
		}
	} else if err := msg.FromFormat(s.config.SenderName, s.config.SenderEmail); err != nil {
		return nil, fmt.Errorf("smtp: invalid from address: %w", err)
	}

	if err := msg.To(email.To...); err != nil {
		return nil, fmt.Errorf("smtp: invalid to address: %w", err)
	}
	if len(email.CC) > 0 {
		if err := msg.Cc(email.CC...); err != nil {
			return nil, fmt.Errorf("smtp: invalid cc address: %w", err)
		}
	}
	if len(email.BCC) > 0 {
		if err := msg.Bcc(email.BCC...); err != nil {
			return nil, fmt.Errorf("smtp: invalid bcc address: %w", err)
		}
	}
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			return nil, fmt.Errorf("smtp: invalid reply-to address: %w", err)
		}
	}

	msg.Subject(email.Subject)
	msg.SetMessageID()
	for k, v := range email.Headers {
		msg.SetGenHeader(mail.Header(k), v)
	}

	switch {
	case email.Text != "" && email.HTML != "":
		msg.SetBodyString(mail.TypeTextPlain, email.Text)
		msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	case email.HTML != "":
		msg.SetBodyString(mail.TypeTextHTML, email.HTML)
	default:
		msg.SetBodyString(mail.TypeTextPlain, email.Text)
	}

	for _, a := range email.Attachments {
		var opts []mail.FileOption
		if a.ContentType != "" {
			opts = append(opts, mail.WithFileContentType(mail.ContentType(a.ContentType)))
		}
		if a.ContentID != "" {
			msg.EmbedReadSeeker(a.Filename, bytes.NewReader(a.Content), opts...)
			continue
		}
		msg.AttachReadSeeker(a.Filename, bytes.NewReader(a.Content), opts...)
	}

	return msg, nil
}

func messageID(msg *mail.Msg) string {
	return strings.Trim(msg.GetMessageID(), "<>")
}
