package validators

import (
	"html"
	"regexp"
)

var (
	// markupTag matches a tag up to its closing '>' or, when unclosed, up to
	// the end of the string. A '<' followed by whitespace is plain text.
	markupTag = regexp.MustCompile(`<(?:[^\s>][^>]*)?(?:>|$)`)

	// emailDisallowed matches every character that cannot appear in an
	// e-mail address.
	emailDisallowed = regexp.MustCompile("[^a-zA-Z0-9!#$%&'*+\\-=?^_`{|}~@.\\[\\]]")
)

func sanitizeString(s string) string {
	s = markupTag.ReplaceAllString(s, "")
	return html.EscapeString(s)
}

func sanitizeEmail(s string) string {
	return emailDisallowed.ReplaceAllString(s, "")
}
