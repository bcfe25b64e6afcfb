package token

import (
	"fmt"
	"strings"
	"unicode"
)

// specialChars are the characters PVL grammar reserves; text
// containing any of them cannot be written bare.
const specialChars = "&<>'{},[]=!#()%\";|"

// reservedWords are spellings that would read back as something other
// than text, compared case-insensitively.
var reservedWords = map[string]bool{
	"true":         true,
	"false":        true,
	"null":         true,
	"end":          true,
	"group":        true,
	"begin_group":  true,
	"end_group":    true,
	"object":       true,
	"begin_object": true,
	"end_object":   true,
}

// NeedsQuote reports whether v must be quoted to survive as a text
// value under PVL grammar.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	switch v[0] {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '+', '-', '.':
		return true
	}
	if reservedWords[strings.ToLower(v)] {
		return true
	}
	for _, r := range v {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return true
		}
		if strings.ContainsRune(specialChars, r) {
			return true
		}
	}
	return strings.Contains(v, "/*")
}

// Quote returns the quoted form of v. PVL quoted strings have no
// escape sequences: the string simply runs to the next occurrence of
// its delimiter. Text containing double quotes is single-quoted; text
// containing both quote characters cannot be represented and is
// rejected with ErrCannotQuote.
func Quote(v string) (string, error) {
	if !strings.Contains(v, `"`) {
		return `"` + v + `"`, nil
	}
	if !strings.Contains(v, `'`) {
		return `'` + v + `'`, nil
	}
	return "", fmt.Errorf("%w: text contains both quote characters", ErrCannotQuote)
}

// Unquote strips the delimiters from a quoted form produced by Quote
// or read by Tokenize.
func Unquote(v string) (string, error) {
	if len(v) < 2 {
		return "", ErrUnterminated
	}
	q := v[0]
	if q != '"' && q != '\'' {
		return "", fmt.Errorf("%w: not a quoted string", ErrCannotQuote)
	}
	if v[len(v)-1] != q {
		return "", ErrUnterminated
	}
	inner := v[1 : len(v)-1]
	if strings.IndexByte(inner, q) >= 0 {
		return "", ErrUnterminated
	}
	return inner, nil
}
