package breach

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matcher tests breach fields for a case-insensitive substring match.
// The query is folded once, fields on every call.
type Matcher struct {
	fold  cases.Caser
	query string
}

// NewMatcher returns a Matcher for query. The empty query matches every field set.
func NewMatcher(query string) *Matcher {
	fold := cases.Fold()
	return &Matcher{
		fold:  fold,
		query: fold.String(query),
	}
}

// Matches reports whether the query is a substring of any of the fields,
// compared after Unicode case folding.
func (m *Matcher) Matches(fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(m.fold.String(f), m.query) {
			return true
		}
	}
	return false
}
