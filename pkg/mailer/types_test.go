package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		who   string
		email string
		want  string
	}{
		{name: "with name", who: "Portfolio Contact", email: "onboarding@resend.dev", want: "Portfolio Contact <onboarding@resend.dev>"},
		{name: "without name", who: "", email: "owner@example.com", want: "owner@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Recipient(tt.who, tt.email))
		})
	}
}
