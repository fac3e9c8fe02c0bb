package provider

import (
	"strings"
	"unicode"
)

// normalizeReply cleans a raw completion before it enters a transcript: strip
// leading whitespace, then drop a single stray leading "." some models emit,
// then trim the remainder. Interior whitespace and additional leading dots are
// preserved.
func normalizeReply(s string) string {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if strings.HasPrefix(s, ".") {
		s = strings.TrimSpace(s[1:])
	}
	return s
}
