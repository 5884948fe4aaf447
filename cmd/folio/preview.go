package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/folio/internal/contact"
)

type previewOptions struct {
	name    string
	email   string
	message string
	html    bool
}

func newPreviewCmd(opts *rootOptions) *cobra.Command {
	p := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a contact notification without sending it",
		Long: `Render the notification the site owner would receive for a submission.
Nothing is validated or sent. Without --message the message is read from stdin.

Example:
  folio preview --name Jane --email jane@example.com --message "Hi there"
  echo "Hello" | folio preview --name Jane --email jane@example.com --html > out.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("message") {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read message: %w", err)
				}
				p.message = strings.TrimSuffix(string(b), "\n")
			}

			f := contact.NewFormatter(contact.NewRenderer(), cfg.Mailer.DefaultLayout)
			return runPreview(cmd.OutOrStdout(), f, p)
		},
	}

	cmd.Flags().StringVar(&p.name, "name", "", "sender name")
	cmd.Flags().StringVar(&p.email, "email", "", "sender email, used as Reply-To")
	cmd.Flags().StringVar(&p.message, "message", "", "message body")
	cmd.Flags().BoolVar(&p.html, "html", false, "print the HTML body instead of the plain text one")
	return cmd
}

func runPreview(w io.Writer, f *contact.Formatter, p *previewOptions) error {
	n, err := f.Format(contact.Submission{
		Name:    p.name,
		Email:   p.email,
		Message: p.message,
	})
	if err != nil {
		return err
	}

	if p.html {
		_, err = io.WriteString(w, n.HTML)
		return err
	}
	_, err = fmt.Fprintf(w, "Subject: %s\nReply-To: %s\n\n%s", n.Subject, p.email, n.Text)
	return err
}
