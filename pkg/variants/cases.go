package variants

import (
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case converts a single string to a naming convention
type Case func(string) string

// Upper converts every letter to upper case, leaving separators untouched
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Lower converts every letter to lower case, leaving separators untouched
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Sentence converts to lower case words separated by spaces
func Sentence(s string) string {
	return strings.Join(words(s), " ")
}

// Title converts to capitalised words separated by spaces
func Title(s string) string {
	return strings.Join(capitalized(s), " ")
}

// Camel converts to lowerCamelCase
func Camel(s string) string {
	return strcase.ToLowerCamel(s)
}

// Pascal converts to UpperCamelCase
func Pascal(s string) string {
	return strcase.ToCamel(s)
}

// Kebab converts to kebab-case
func Kebab(s string) string {
	return strings.Join(words(s), "-")
}

// Train converts to Train-Case
func Train(s string) string {
	return strings.Join(capitalized(s), "-")
}

// Snake converts to snake_case
func Snake(s string) string {
	return strings.Join(words(s), "_")
}

// Constant converts to CONSTANT_CASE
func Constant(s string) string {
	return Upper(Snake(s))
}

// words splits s on case changes and separators, lower casing every word.
// Runs of separators and leading or trailing ones produce no empty word.
func words(s string) []string {
	return strings.Fields(strcase.ToDelimited(s, ' '))
}

func capitalized(s string) []string {
	ws := words(s)
	title := cases.Title(language.Und)
	for i, w := range ws {
		ws[i] = title.String(w)
	}
	return ws
}

// Separate replaces every run of non alphanumeric ASCII characters with a
// single sep, e.g. Separate("a--b__c", '/') == "a/b/c".
func Separate(s string, sep byte) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if isASCIIAlnum(r) {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte(sep)
			inRun = true
		}
	}
	return b.String()
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
