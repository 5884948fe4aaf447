package contact

import (
	"embed"
	"io/fs"

	"github.com/dmitrymomot/folio/pkg/mailer"
)

// TemplateName is the notification template pair under templates/.
const TemplateName = "contact"

//go:embed templates
var templatesFS embed.FS

// NewRenderer returns a renderer over the embedded notification templates.
func NewRenderer() *mailer.Renderer {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err) // embedded path is fixed at build time
	}
	return mailer.NewRenderer(sub)
}

// Notification is the rendered email the site owner receives.
type Notification struct {
	Subject string
	Text    string
	HTML    string
}

// Formatter renders submissions into notifications.
// It performs no validation and no I/O beyond reading embedded templates.
type Formatter struct {
	renderer *mailer.Renderer
	layout   string
}

// NewFormatter creates a formatter. An empty layout renders the bare card.
func NewFormatter(renderer *mailer.Renderer, layout string) *Formatter {
	return &Formatter{renderer: renderer, layout: layout}
}

// Format renders the plain text and HTML bodies for s.
// Each "\n" in the message becomes one <br> in the HTML body.
func (f *Formatter) Format(s Submission) (Notification, error) {
	res, err := f.renderer.Render(f.layout, TemplateName, s)
	if err != nil {
		return Notification{}, err
	}

	subject, _ := res.Subject()
	subject, err = mailer.ExecuteSubject(subject, s)
	if err != nil {
		return Notification{}, err
	}

	return Notification{
		Subject: subject,
		Text:    res.Text,
		HTML:    res.HTML,
	}, nil
}
