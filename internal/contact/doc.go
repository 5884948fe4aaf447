// Package contact implements the portfolio contact form: validation of a
// submission, rendering of the owner notification, and its dispatch.
//
// Validation is an ordered pair of guards. Presence is checked first:
//
//	err := contact.Submission{Name: "Jane", Email: "", Message: "Hi"}.Validate()
//	// err == contact.ErrMissingFields
//
// then the shallow email format (local@domain.tld without "@" or whitespace):
//
//	err = contact.Submission{Name: "Jane", Email: "jane@", Message: "Hi"}.Validate()
//	// err == contact.ErrInvalidEmail
//
// A Service wires a mailer.Mailer built over NewRenderer and sends to a fixed
// recipient with Reply-To set to the submitter:
//
//	m := mailer.New(sender, contact.NewRenderer(), mailer.Config{DefaultLayout: "base.html"})
//	svc := contact.NewService(m, "owner@example.com")
//	id, err := svc.Submit(ctx, sub)
//
// Formatter renders the same templates without sending, for previews.
package contact
