package search

import (
	"strings"

	"github.com/anilreddy12001/portfolio-engine/core"
)

// Normalize prepares a raw query for scoring: leading and trailing
// whitespace is trimmed and the remainder lower-cased. An empty result means
// the query must not be scored at all.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// anyContains reports whether any of the values contains the normalized
// query as a substring. Values are lower-cased before matching.
func anyContains(values []string, normalizedQuery string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), normalizedQuery) {
			return true
		}
	}
	return false
}

// concatenated space-joins every value of every field into one lower-cased
// string, used for the catch-all concatenation match.
func concatenated(fields []core.Field) string {
	var b strings.Builder
	for _, f := range fields {
		for _, v := range f.Values {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(v)
		}
	}
	return strings.ToLower(b.String())
}
