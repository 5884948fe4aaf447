package mailer

import "fmt"

// Tags are provider-specific categories attached to an email.
// Presence-only tags use struct{}{}; key-value tags use any printable value.
type Tags map[string]any

// Recipient formats a name and address as "Name <address>".
// Returns the bare address when name is empty.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email is a fully prepared message ready for a Sender.
type Email struct {
	Headers     map[string]string
	Tags        Tags
	Subject     string
	HTML        string
	Text        string // Plain text alternative
	From        string // Overrides the sender default when set
	ReplyTo     string
	To          []string // At least one recipient
	CC          []string
	BCC         []string
	Attachments []Attachment
}

// Attachment is a file attached to an email.
type Attachment struct {
	Filename    string
	ContentType string
	ContentID   string // Set for inline attachments
	Content     []byte
}
