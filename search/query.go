package search

import (
	"strings"
	"unicode"
)

// ParseTerms splits a query into search terms.
// Terms are separated by whitespace, except inside double quotes where the
// quoted span is kept together as a single phrase: `red "blue green" yellow`
// => "red" "blue green" "yellow".
//
// Malformed input is never an error:
//   - an unclosed quote folds the rest of the query into one phrase
//   - a quote inside a word joins the text on either side of it into one
//     space-separated phrase, so `ab"cd ef"` => "ab cd ef"
//   - empty quotes produce no term
//
// Returned terms are trimmed and never empty.
func ParseTerms(query string) []string {
	terms := []string{}

	var term strings.Builder
	inQuote := false
	// set when a quote boundary sits inside a word; the next rune written to
	// a non-empty term is preceded by a single space
	needSep := false

	// whether the last rune written to term was whitespace
	lastSpace := false

	appendTerm := func() {
		if t := strings.TrimSpace(term.String()); t != "" {
			terms = append(terms, t)
		}
		term.Reset()
		needSep = false
		lastSpace = false
	}
	appendRune := func(r rune) {
		space := unicode.IsSpace(r)
		if needSep {
			if term.Len() > 0 && !lastSpace && !space {
				term.WriteByte(' ')
			}
			needSep = false
		}
		term.WriteRune(r)
		lastSpace = space
	}

	for _, r := range query {
		switch {
		case r == '"':
			inQuote = !inQuote
			needSep = term.Len() > 0
		case inQuote:
			appendRune(r)
		case unicode.IsSpace(r):
			appendTerm()
		default:
			appendRune(r)
		}
	}
	appendTerm()

	return terms
}
