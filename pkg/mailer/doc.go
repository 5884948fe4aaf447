// Package mailer sends templated email through pluggable providers.
//
// Sending (Sender) is separated from rendering (Renderer) so a provider can be
// swapped without touching templates.
//
//   - Sender: delivers a prepared Email and returns the provider's delivery id
//   - Renderer: renders a template pair, "<name>.html" (html/template, required)
//     and "<name>.txt" (text/template, optional), with an optional HTML layout
//   - Mailer: combines both and resolves the subject
//
// # Templates
//
// The HTML file may start with YAML frontmatter. The "Subject" key is used when
// SendParams.Subject is empty and is itself executed as a text template:
//
//	---
//	Subject: New message from {{.Name}}
//	---
//	<p>{{range $i, $line := lines .Message}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
//
// The built-in "lines" function splits a string on "\n". Layouts receive the
// rendered body as .Content, the frontmatter as .Metadata and the caller's data
// as .Data.
//
// # Usage
//
//	sender := resend.New(resend.Config{
//		APIKey:      os.Getenv("RESEND_API_KEY"),
//		SenderEmail: "onboarding@resend.dev",
//		SenderName:  "Portfolio Contact",
//	})
//
//	m := mailer.New(sender, mailer.NewRenderer(templates.FS), mailer.Config{
//		FallbackSubject: "Notification",
//		DefaultLayout:   "base.html",
//	})
//
//	id, err := m.Send(ctx, mailer.SendParams{
//		To:       "owner@example.com",
//		Template: "contact",
//		ReplyTo:  "visitor@example.com",
//		Data:     data,
//	})
//
// Providers live in sub-packages: resend (HTTP API) and smtp (go-mail).
// A provider that implements Checker can be exposed as a readiness probe with
// Healthcheck.
package mailer
