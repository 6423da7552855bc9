package common

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// BlankName is the identifier used for an empty enumeration value.
const BlankName = "BLANK"

var (
	identifierRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	camelRe      = regexp.MustCompile(`([a-z])([A-Z])`)
	spaceRe      = regexp.MustCompile(`\s`)
	nonWordRe    = regexp.MustCompile(`\W`)
)

// IsIdentifier reports whether s is a letter followed by letters, digits or
// underscores.
func IsIdentifier(s string) bool {
	return identifierRe.MatchString(s)
}

// Sanitize turns arbitrary schema text (an enumeration value or element name)
// into an uppercase identifier. It is stable: the enumeration tables and the
// JAXB member directives rely on producing the same name for the same value.
//
//	""          -> "BLANK"
//	"camelCase" -> "CAMEL_CASE"
//	"foo bar"   -> "FOOBAR"
//	"2fast"     -> "V2FAST"
//	"a/b-c"     -> "A_B_C"
func Sanitize(name string) string {
	if name == "" {
		return BlankName
	}
	if IsIdentifier(name) {
		return strings.ToUpper(camelRe.ReplaceAllString(name, "${1}_${2}"))
	}

	s := spaceRe.ReplaceAllString(name, "")
	s = strings.ReplaceAll(s, "/", "_")
	s = nonWordRe.ReplaceAllString(s, "_")
	if s == "" {
		return BlankName
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "V" + s
	}
	return strings.ToUpper(s)
}

// FirstLower lowercases the first rune of s.
func FirstLower(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// FirstUpper uppercases the first rune of s.
func FirstUpper(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// ToSnakeCase converts a Go-style field name to snake_case.
// "MaxEnum" -> "max_enum", "XMLParser" -> "xml_parser".
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if i > 0 && unicode.IsUpper(r) {
			prevIsLower := unicode.IsLower(runes[i-1])
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			// "someWord" -> "some_word", "XMLParser" -> "xml_parser"
			if prevIsLower || nextIsLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
