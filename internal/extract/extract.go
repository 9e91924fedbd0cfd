package extract

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yellottyellott/chat-parser/internal/grammar"
)

// ConfigurationError reports a matcher used without the pattern it needs.
// It is a programming error and is never swallowed.
type ConfigurationError struct {
	Component string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: pattern must be defined", e.Component)
}

// IsConfigurationError reports whether err, or the error it wraps, is a
// *ConfigurationError.
func IsConfigurationError(err error) bool {
	_, ok := errors.Cause(err).(*ConfigurationError)
	return ok
}

// Extractor pulls the tokens matched by Pattern out of text, first seen
// first, deduplicated case-insensitively.
type Extractor struct {
	Name    string
	Pattern *regexp.Regexp

	// PreserveCase keeps the case of the first occurrence instead of
	// lower-casing every token. Links need it: paths and queries are case
	// sensitive.
	PreserveCase bool
}

// New returns an extractor that lower-cases its tokens.
func New(name string, pattern *regexp.Regexp) *Extractor {
	return &Extractor{Name: name, Pattern: pattern}
}

// Extract returns the ordered set of tokens found in text. It returns a
// *ConfigurationError when no pattern is bound.
func (e *Extractor) Extract(text string) ([]string, error) {
	if e == nil || e.Pattern == nil {
		name := "extractor"
		if e != nil && e.Name != "" {
			name = e.Name
		}
		return nil, &ConfigurationError{Component: name}
	}

	raw := grammar.All(e.Pattern, text)
	if len(raw) == 0 {
		return nil, nil
	}

	// Casers keep state; one per call keeps Extract safe for concurrent use.
	lower := cases.Lower(language.Und)

	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		key := lower.String(tok)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		if !e.PreserveCase {
			tok = key
		}
		out = append(out, tok)
	}

	return out, nil
}
