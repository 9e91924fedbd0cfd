package extract

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
		ok     bool
	}{
		{"bare title", "<title>Royal Tart Toter</title>", "Royal Tart Toter", true},
		{"no title", "<body>Royal Tart Toter</body>", "", false},
		{"empty title", "<html><head><title></title></head></html>", "", true},
		{"verbatim whitespace", "<title>  Lumpy Space\n</title>", "  Lumpy Space\n", true},
		{"entities decoded", "<title>Finn &amp; Jake</title>", "Finn & Jake", true},
		{"first of many", "<title>One</title><title>Two</title>", "One", true},
		{"malformed markup", "<div><p>unclosed <b>bold</div></span><title>Late</title>", "Late", true},
		{"unterminated title", "<html><head><title>Ice King", "Ice King", true},
		{"not html", "\x00\x01\x02 binary junk", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := Title(strings.NewReader(tt.markup))
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTitle_ReaderError(t *testing.T) {
	_, ok, err := Title(iotest.ErrReader(errors.New("connection reset")))
	require.Error(t, err)
	assert.False(t, ok)
}
