package usecase

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/yellottyellott/chat-parser/internal/domain"
	"github.com/yellottyellott/chat-parser/internal/extract"
	"github.com/yellottyellott/chat-parser/internal/grammar"
)

// MatchFunc finds the tokens of one kind in text and records them in msg.
type MatchFunc func(ctx context.Context, text string, msg *domain.Message) error

// Handler runs one MatchFunc per token kind over a message.
type Handler struct {
	matchers map[domain.Kind]MatchFunc
}

// NewHandler returns a Handler for mentions, emoticons and links.
func NewHandler(links *LinkPipeline) *Handler {
	h := &Handler{matchers: make(map[domain.Kind]MatchFunc)}

	h.Register(domain.KindMentions, TokenMatcher(extract.New(string(domain.KindMentions), grammar.Mention),
		func(msg *domain.Message, tokens []string) { msg.Mentions = tokens }))
	h.Register(domain.KindEmoticons, TokenMatcher(extract.New(string(domain.KindEmoticons), grammar.Emoticon),
		func(msg *domain.Message, tokens []string) { msg.Emoticons = tokens }))
	h.Register(domain.KindLinks, func(ctx context.Context, text string, msg *domain.Message) error {
		found, err := links.Parse(ctx, text)
		if err != nil {
			return err
		}
		msg.Links = found
		return nil
	})

	return h
}

// TokenMatcher adapts an extractor into a MatchFunc; set stores the tokens.
func TokenMatcher(ext *extract.Extractor, set func(msg *domain.Message, tokens []string)) MatchFunc {
	return func(_ context.Context, text string, msg *domain.Message) error {
		tokens, err := ext.Extract(text)
		if err != nil {
			return err
		}
		set(msg, tokens)
		return nil
	}
}

// Register sets the matcher for kind, replacing any previous one.
func (h *Handler) Register(kind domain.Kind, fn MatchFunc) {
	h.matchers[kind] = fn
}

// Parse runs every registered matcher over text. A matcher error, such as a
// missing pattern, aborts the parse; link resolution failures never do.
func (h *Handler) Parse(ctx context.Context, text string) (domain.Message, error) {
	kinds := make([]domain.Kind, 0, len(h.matchers))
	for k := range h.matchers {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	var msg domain.Message
	for _, k := range kinds {
		if err := h.matchers[k](ctx, text, &msg); err != nil {
			return domain.Message{}, errors.Wrapf(err, "match %s", k)
		}
	}
	return msg, nil
}
