package usecase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yellottyellott/chat-parser/internal/domain"
	"github.com/yellottyellott/chat-parser/internal/extract"
	"github.com/yellottyellott/chat-parser/internal/title"
)

// doerFunc serves every request the title resolver makes.
type doerFunc func(req *http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

func pageWithTitle(t string) doerFunc {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"text/html"}},
			Body:       io.NopCloser(strings.NewReader("<title>" + t + "</title>")),
		}, nil
	}
}

func newTestHandler(client doerFunc) *Handler {
	return NewHandler(NewLinkPipeline(title.NewResolver(client, time.Second, nil), DefaultWorkers, nil))
}

func TestHandler_Parse(t *testing.T) {
	h := newTestHandler(pageWithTitle("Jake"))

	msg, err := h.Parse(context.Background(), "@jake, jake.com is up. (thumbsup)")
	require.NoError(t, err)
	assert.Equal(t, domain.Message{
		Mentions:  []string{"jake"},
		Emoticons: []string{"thumbsup"},
		Links:     []domain.Link{{URL: "jake.com", Title: "Jake"}},
	}, msg)

	out, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mentions":["jake"],"emoticons":["thumbsup"],"links":[{"url":"jake.com","title":"Jake"}]}`, string(out))
}

func TestHandler_MissingKindsAreOmitted(t *testing.T) {
	h := newTestHandler(pageWithTitle("unused"))

	msg, err := h.Parse(context.Background(), "@jake is makin bacon pancakes.")
	require.NoError(t, err)
	assert.Equal(t, []domain.Kind{domain.KindMentions}, msg.Kinds())

	out, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mentions":["jake"]}`, string(out))
}

func TestHandler_NoTokens(t *testing.T) {
	h := newTestHandler(pageWithTitle("unused"))

	msg, err := h.Parse(context.Background(), "Adventure time!")
	require.NoError(t, err)
	assert.True(t, msg.IsEmpty())

	out, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))
}

func TestHandler_TimeoutLeavesEmptyTitle(t *testing.T) {
	h := newTestHandler(func(req *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})

	msg, err := h.Parse(context.Background(), "is lumpyspace.com down?")
	require.NoError(t, err)

	out, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"links":[{"url":"lumpyspace.com","title":""}]}`, string(out))
}

func TestHandler_CaseHandling(t *testing.T) {
	h := newTestHandler(pageWithTitle("Finn"))

	msg, err := h.Parse(context.Background(), "@Jake and @JAKE (Jake) (JAKE) at OOO.com/Finn")
	require.NoError(t, err)
	assert.Equal(t, []string{"jake"}, msg.Mentions)
	assert.Equal(t, []string{"jake"}, msg.Emoticons)
	assert.Equal(t, []domain.Link{{URL: "OOO.com/Finn", Title: "Finn"}}, msg.Links)
}

func TestHandler_ConfigurationErrorPropagates(t *testing.T) {
	h := newTestHandler(pageWithTitle("unused"))
	h.Register(domain.KindMentions, TokenMatcher(&extract.Extractor{Name: "mentions"},
		func(msg *domain.Message, tokens []string) { msg.Mentions = tokens }))

	_, err := h.Parse(context.Background(), "@jake")
	require.Error(t, err)
	assert.True(t, extract.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "match mentions")
}

func TestHandler_NilLinkPipeline(t *testing.T) {
	_, err := NewHandler(nil).Parse(context.Background(), "jake.com")
	require.Error(t, err)
	assert.True(t, extract.IsConfigurationError(err))
}

func TestHandler_StubbedResolver(t *testing.T) {
	res := &mockResolver{}
	res.On("Resolve", mock.Anything, "jake.com").Return("Jake").Once()

	h := NewHandler(NewLinkPipeline(res, 0, nil))
	msg, err := h.Parse(context.Background(), "@jake, jake.com is up. (thumbsup)")
	require.NoError(t, err)
	assert.Equal(t, []domain.Link{{URL: "jake.com", Title: "Jake"}}, msg.Links)
	res.AssertExpectations(t)
}
