package render

import "strings"

// HiddenEscape prefixes file and directory names standing for hidden ones:
// a template named `!gitignore` is written as `.gitignore`.
const HiddenEscape = '!'

// IsEscaped reports whether a base name carries the hidden escape
func IsEscaped(base string) bool {
	return len(base) > 1 && base[0] == HiddenEscape
}

// Unescape replaces the hidden escape of a base name with a dot
func Unescape(base string) string {
	if !IsEscaped(base) {
		return base
	}
	return "." + strings.TrimPrefix(base, string(HiddenEscape))
}
