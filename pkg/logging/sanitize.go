package logging

import (
	"strings"
	"unicode"
)

// maximumSanitizedLength is the longest sanitized string that Sanitize will
// return before truncating. GPU identifier strings and model identifiers are
// well below this in practice.
const maximumSanitizedLength = 100

// Sanitize prepares an untrusted string (such as a vendor-supplied GPU
// identifier) for logging by escaping control characters that could otherwise
// be used for log injection, and truncating overlong values.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s))

	for _, r := range s {
		switch {
		case r == '\n':
			result.WriteString("\\n")
		case r == '\r':
			result.WriteString("\\r")
		case r == '\t':
			result.WriteString("\\t")
		case unicode.IsControl(r):
			result.WriteString("?")
		case r == '\\':
			result.WriteString("\\\\")
		case unicode.IsPrint(r):
			result.WriteRune(r)
		default:
			result.WriteString("?")
		}
	}

	if result.Len() > maximumSanitizedLength {
		return result.String()[:maximumSanitizedLength] + "...[truncated]"
	}

	return result.String()
}
