package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// TextFilter normalizes user supplied post text before it is stored.
type TextFilter func(string) string

// NewTextFilter returns a filter that strips all HTML and surrounding
// whitespace when stripHTML is set, and leaves text untouched otherwise.
func NewTextFilter(stripHTML bool) TextFilter {
	if !stripHTML {
		return func(s string) string { return s }
	}
	policy := bluemonday.StrictPolicy()
	return func(s string) string {
		return strings.TrimSpace(policy.Sanitize(s))
	}
}
