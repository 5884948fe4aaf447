package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		metadata map[string]any
		body     string
	}{
		{
			name:     "frontmatter and body",
			content:  "---\nSubject: New message from {{.Name}}\n---\n<p>{{.Message}}</p>",
			metadata: map[string]any{"Subject": "New message from {{.Name}}"},
			body:     "<p>{{.Message}}</p>",
		},
		{
			name:     "no frontmatter",
			content:  "<p>Plain body</p>",
			metadata: map[string]any{},
			body:     "<p>Plain body</p>",
		},
		{
			name:     "empty frontmatter",
			content:  "---\n---\nBody",
			metadata: map[string]any{},
			body:     "Body",
		},
		{
			name:     "whitespace frontmatter",
			content:  "---\n   \n---\nBody",
			metadata: map[string]any{},
			body:     "Body",
		},
		{
			name:     "windows line endings",
			content:  "---\r\nSubject: Hi\r\n---\r\nBody",
			metadata: map[string]any{"Subject": "Hi"},
			body:     "Body",
		},
		{
			name:     "empty body",
			content:  "---\nSubject: Hi\n---\n",
			metadata: map[string]any{"Subject": "Hi"},
			body:     "",
		},
		{
			name:     "delimiters inside body are kept",
			content:  "---\nSubject: Hi\n---\nabove\n---\nbelow",
			metadata: map[string]any{"Subject": "Hi"},
			body:     "above\n---\nbelow",
		},
		{
			name:     "multiline body keeps blank lines",
			content:  "---\nSubject: Hi\n---\nline one\n\nline three\n",
			metadata: map[string]any{"Subject": "Hi"},
			body:     "line one\n\nline three\n",
		},
		{
			name:     "typed metadata",
			content:  "---\nPriority: 1\nUrgent: true\nTags:\n  - contact\n---\nBody",
			metadata: map[string]any{"Priority": 1, "Urgent": true, "Tags": []any{"contact"}},
			body:     "Body",
		},
		{
			name:     "empty content",
			content:  "",
			metadata: map[string]any{},
			body:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpl, err := ParseTemplate([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.metadata, tmpl.Metadata)
			assert.Equal(t, tt.body, tmpl.Body)
		})
	}
}

func TestParseTemplate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "missing closing delimiter", content: "---\nSubject: Hi\nBody"},
		{name: "nothing after opening delimiter", content: "---\n"},
		{name: "invalid yaml", content: "---\nSubject: [unclosed\n---\nBody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseTemplate([]byte(tt.content))
			require.ErrorIs(t, err, ErrInvalidFrontmatter)
		})
	}
}

func TestTemplate_Subject(t *testing.T) {
	t.Parallel()

	tmpl, err := ParseTemplate([]byte("---\nSubject: Hello\n---\nBody"))
	require.NoError(t, err)
	subject, ok := tmpl.Subject()
	assert.True(t, ok)
	assert.Equal(t, "Hello", subject)

	tmpl, err = ParseTemplate([]byte("---\nSubject: 42\n---\nBody"))
	require.NoError(t, err)
	_, ok = tmpl.Subject()
	assert.False(t, ok, "non-string subject is ignored")

	tmpl, err = ParseTemplate([]byte("Body"))
	require.NoError(t, err)
	_, ok = tmpl.Subject()
	assert.False(t, ok)
}
