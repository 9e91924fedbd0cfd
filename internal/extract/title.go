package extract

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Title parses r as HTML and returns the text of the first <title> element
// in document order. ok is false when the document has no title element.
// Malformed markup is repaired by the parser, so err is only set when r
// itself fails.
func Title(r io.Reader) (title string, ok bool, err error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", false, errors.Wrap(err, "parse html")
	}

	n := findFirst(doc, atom.Title)
	if n == nil {
		return "", false, nil
	}

	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String(), true, nil
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}
