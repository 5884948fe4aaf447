package mailer

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSender is a mock implementation of Sender interface.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *Email) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func newTestMailer(sender Sender) *Mailer {
	return New(sender, NewRenderer(testFS()), Config{
		DefaultLayout:   "base.html",
		FallbackSubject: "Notification",
	})
}

func TestMailer_Send(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := newTestMailer(sender)

	sender.On("Send", mock.Anything, mock.MatchedBy(func(e *Email) bool {
		return len(e.To) == 1 && e.To[0] == "owner@example.com" &&
			e.Subject == "Note for Jane & co" &&
			e.ReplyTo == "jane@example.com" &&
			e.Tags["source"] == "contact_form" &&
			e.HTML == "<html><body><p>Jane &amp; co</p><p>hi</p></body></html>" &&
			e.Text == "Name: Jane & co\nhi"
	})).Return("msg_123", nil).Once()

	id, err := m.Send(context.Background(), SendParams{
		To:       "owner@example.com",
		Template: "note",
		Data:     noteData{Name: "Jane & co", Message: "hi"},
		ReplyTo:  "jane@example.com",
		Tags:     Tags{"source": "contact_form"},
	})

	require.NoError(t, err)
	assert.Equal(t, "msg_123", id)
	sender.AssertExpectations(t)
}

func TestMailer_Send_NoRecipient(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := newTestMailer(sender)

	_, err := m.Send(context.Background(), SendParams{Template: "note"})

	require.ErrorIs(t, err, ErrNoRecipient)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestMailer_Send_RenderFailure(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	m := newTestMailer(sender)

	_, err := m.Send(context.Background(), SendParams{To: "owner@example.com", Template: "missing"})

	require.ErrorIs(t, err, ErrRenderFailed)
	require.ErrorIs(t, err, ErrTemplateNotFound)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestMailer_Send_SenderFailure(t *testing.T) {
	t.Parallel()

	providerErr := errors.New("provider: 422 invalid from address")
	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return("", providerErr).Once()
	m := newTestMailer(sender)

	id, err := m.Send(context.Background(), SendParams{
		To:       "owner@example.com",
		Template: "note",
		Data:     noteData{Name: "Jane"},
	})

	require.ErrorIs(t, err, ErrSendFailed)
	require.ErrorIs(t, err, providerErr)
	assert.Empty(t, id)
	sender.AssertExpectations(t)
}

func TestMailer_Build_SubjectResolution(t *testing.T) {
	t.Parallel()

	m := newTestMailer(&MockSender{})

	tests := []struct {
		name     string
		template string
		subject  string
		want     string
	}{
		{name: "params override", template: "note", subject: "Override for {{.Name}}", want: "Override for Jane"},
		{name: "frontmatter", template: "note", want: "Note for Jane"},
		{name: "fallback", template: "html_only", want: "Notification"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			email, err := m.Build(SendParams{
				To:       "owner@example.com",
				Template: tt.template,
				Subject:  tt.subject,
				Data:     noteData{Name: "Jane"},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.Subject)
		})
	}
}

func TestMailer_Build_SubjectTemplateError(t *testing.T) {
	t.Parallel()

	m := newTestMailer(&MockSender{})

	_, err := m.Build(SendParams{
		To:       "owner@example.com",
		Template: "note",
		Subject:  "{{.Name",
		Data:     noteData{Name: "Jane"},
	})
	require.ErrorIs(t, err, ErrRenderFailed)
}

func TestMailer_Build_LayoutOverride(t *testing.T) {
	t.Parallel()

	fs := testFS()
	fs["layouts/plain.html"] = &fstest.MapFile{Data: []byte(`<div>{{.Content}}</div>`)}
	m := New(&MockSender{}, NewRenderer(fs), Config{DefaultLayout: "base.html"})

	email, err := m.Build(SendParams{
		To:       "owner@example.com",
		Template: "html_only",
		Layout:   "plain.html",
		Data:     noteData{Name: "Jane"},
	})
	require.NoError(t, err)
	assert.Equal(t, "<div><p>Jane</p></div>", email.HTML)
}

type checkingSender struct {
	MockSender
	err error
}

func (c *checkingSender) Check(context.Context) error { return c.err }

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	require.NoError(t, Healthcheck(&MockSender{})(context.Background()))
	require.NoError(t, Healthcheck(&checkingSender{})(context.Background()))
	require.ErrorIs(t, Healthcheck(&checkingSender{err: ErrNotConfigured})(context.Background()), ErrNotConfigured)
}
