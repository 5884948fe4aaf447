package mailer

import "context"

// Sender is the minimal capability an email provider must offer.
type Sender interface {
	// Send delivers a prepared email and returns the provider's delivery id.
	// The id may be empty when the provider does not report one.
	Send(ctx context.Context, email *Email) (string, error)
}

// Checker is implemented by senders that can verify their configuration or
// reachability without sending anything.
type Checker interface {
	Check(ctx context.Context) error
}

// Healthcheck adapts a Sender into a readiness check.
// Senders that do not implement Checker are always reported healthy.
func Healthcheck(s Sender) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if c, ok := s.(Checker); ok {
			return c.Check(ctx)
		}
		return nil
	}
}
