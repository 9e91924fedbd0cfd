package domain

// Kind names a token category. It is also the key used in the output.
type Kind string

const (
	KindMentions  Kind = "mentions"
	KindEmoticons Kind = "emoticons"
	KindLinks     Kind = "links"
)

// Message holds every token found in one chat message. A kind with no
// tokens is left empty and omitted from the JSON form.
type Message struct {
	Mentions  []string `json:"mentions,omitempty"`
	Emoticons []string `json:"emoticons,omitempty"`
	Links     []Link   `json:"links,omitempty"`
}

// Kinds returns the kinds that have at least one token.
func (m Message) Kinds() []Kind {
	var out []Kind
	if len(m.Mentions) > 0 {
		out = append(out, KindMentions)
	}
	if len(m.Emoticons) > 0 {
		out = append(out, KindEmoticons)
	}
	if len(m.Links) > 0 {
		out = append(out, KindLinks)
	}
	return out
}

// IsEmpty reports whether no tokens of any kind were found.
func (m Message) IsEmpty() bool {
	return len(m.Kinds()) == 0
}
