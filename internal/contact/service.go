package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/folio/pkg/mailer"
)

// ErrDeliveryFailed indicates the email provider rejected or failed the send.
var ErrDeliveryFailed = errors.New("failed to deliver notification")

// Service forwards valid submissions to the site owner.
type Service struct {
	mailer    *mailer.Mailer
	recipient string
	tags      mailer.Tags
}

// NewService creates a service delivering to recipient through m.
func NewService(m *mailer.Mailer, recipient string) *Service {
	return &Service{
		mailer:    m,
		recipient: recipient,
		tags:      mailer.Tags{"source": "contact_form"},
	}
}

// Submit validates s and dispatches exactly one notification.
// It returns the provider's delivery id, which may be empty.
//
// Dispatch is detached from ctx cancellation so a client disconnect
// cannot abort an in-flight send. Timeouts belong to the provider client.
func (svc *Service) Submit(ctx context.Context, s Submission) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	id, err := svc.mailer.Send(context.WithoutCancel(ctx), mailer.SendParams{
		To:       svc.recipient,
		Template: TemplateName,
		Data:     s,
		ReplyTo:  s.Email,
		Tags:     svc.tags,
	})
	if err != nil {
		if errors.Is(err, mailer.ErrSendFailed) {
			return "", errors.Join(ErrDeliveryFailed, err)
		}
		return "", fmt.Errorf("contact: build notification: %w", err)
	}

	return id, nil
}
