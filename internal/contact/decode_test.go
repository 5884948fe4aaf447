package contact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/internal/contact"
)

func TestDecodeSubmission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want contact.Submission
	}{
		{
			name: "strings",
			body: `{"name":"Jane","email":"jane@x.com","message":"Hi"}`,
			want: contact.Submission{Name: "Jane", Email: "jane@x.com", Message: "Hi"},
		},
		{name: "empty object", body: `{}`},
		{name: "array", body: `[]`},
		{name: "array of objects", body: `[{"name":"Jane"}]`},
		{name: "string", body: `"x"`},
		{name: "number", body: `5`},
		{name: "boolean", body: `true`},
		{
			name: "falsy fields",
			body: `{"name":false,"email":0,"message":null}`,
		},
		{
			name: "negative zero and empty string",
			body: `{"name":-0,"email":"","message":0.0}`,
		},
		{
			name: "numbers and booleans as text",
			body: `{"name":123,"email":true,"message":1.50}`,
			want: contact.Submission{Name: "123", Email: "true", Message: "1.5"},
		},
		{
			name: "exponent forms",
			body: `{"name":1e21,"email":1e-7,"message":2e20}`,
			want: contact.Submission{Name: "1e+21", Email: "1e-7", Message: "200000000000000000000"},
		},
		{
			name: "overflow",
			body: `{"name":1e400,"email":-1e400}`,
			want: contact.Submission{Name: "Infinity", Email: "-Infinity"},
		},
		{
			name: "arrays and objects are absent",
			body: `{"name":["Jane"],"email":{"a":1},"message":"Hi"}`,
			want: contact.Submission{Message: "Hi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := contact.DecodeSubmission([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeSubmission_Errors(t *testing.T) {
	t.Parallel()

	_, err := contact.DecodeSubmission([]byte(`null`))
	require.ErrorIs(t, err, contact.ErrNullBody)

	_, err = contact.DecodeSubmission([]byte(` null `))
	require.ErrorIs(t, err, contact.ErrNullBody)

	_, err = contact.DecodeSubmission([]byte(`{"name":`))
	require.Error(t, err)

	_, err = contact.DecodeSubmission(nil)
	require.Error(t, err)
}
