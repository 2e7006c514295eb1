// Package codes extracts redemption codes from chat payloads and
// classifies each sighting as first-seen or repeat.
package codes

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher applies a configured pattern to uppercased payload text.
// The pattern is compiled once at startup; an invalid override is fatal
// before any connection is opened.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher compiles pattern. Go's regexp engine yields leftmost,
// non-overlapping matches, which is exactly the extraction semantic
// the dedup ordering relies on.
func NewMatcher(pattern string) (*Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid code pattern %q: %w", pattern, err)
	}
	return &Matcher{re: re}, nil
}

// Extract uppercases payload and returns every match in left-to-right
// order. A payload with no match returns nil.
func (m *Matcher) Extract(payload string) []string {
	return m.re.FindAllString(strings.ToUpper(payload), -1)
}
