// Package grammar holds the patterns used to find tokens in chat text.
//
// Every pattern has exactly one capture group: the token itself.
package grammar

import "regexp"

var (
	// Mention matches @nick where nick is made of ASCII word characters.
	Mention = regexp.MustCompile(`@(\w+)`)

	// Emoticon matches (name) where name is 1 to 15 ASCII letters or digits.
	Emoticon = regexp.MustCompile(`\(([a-zA-Z0-9]{1,15})\)`)

	// Link matches URL-like words. A scheme is optional but a host is not:
	// either a dotted-quad IPv4 address or a domain ending in a letters-only
	// TLD of two or more characters. The match must start the text or follow
	// whitespace, so "_night-o-sphere.com_" is not a link.
	//
	// See https://mathiasbynens.be/demo/url-regex for the corpus it was built
	// against. Hosts outside the BMP (emoji domains) are not recognized.
	Link = regexp.MustCompile(`(?i)(?:\s|^)(` +
		scheme + auth +
		`(?:` + ipv4 + `|` + host + domain + tld + `)` +
		port + resource +
		`)`)
)

const (
	scheme = `(?:(?:https?|s?ftp)://)?`
	auth   = `(?:\S+(?::\S*)?@)?`

	octet = `(?:25[0-5]|2[0-4]\d|[0-1]?\d?\d)`
	ipv4  = octet + `(?:\.` + octet + `){3}`

	// label characters: ASCII alphanumerics plus any BMP code point above U+00A0.
	labelChar = `[a-z\x{00a1}-\x{ffff}0-9]`
	host      = `(?:(?:` + labelChar + `-?)*` + labelChar + `+)`
	domain    = `(?:\.(?:` + labelChar + `-?)*` + labelChar + `+)*`
	tld       = `(?:\.(?:[a-z\x{00a1}-\x{ffff}]{2,}))`

	port     = `(?::\d{2,5})?`
	resource = `(?:/\S*)?`
)

// All returns the first capture group of every non-overlapping match of re
// in text, in order of appearance. Duplicates are kept.
func All(re *regexp.Regexp, text string) []string {
	matches := re.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) < 2 || m[1] == "" {
			continue
		}
		out = append(out, m[1])
	}
	return out
}
