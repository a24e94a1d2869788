package grammar

import (
	"strconv"

	"github.com/dlclark/regexp2"
)

// Matcher tests whether a single token satisfies a terminal rule.
//
// A matcher built from a well-formed regular expression matches tokens the
// expression matches in full. A pattern that does not compile, such as "(",
// is matched by plain string equality. Either way a token equal to the
// pattern text matches.
type Matcher struct {
	pattern string
	re      *regexp2.Regexp
}

// NewMatcher returns the matcher for pattern.
func NewMatcher(pattern string) Matcher {
	m := Matcher{pattern: pattern}

	if _, err := regexp2.Compile(pattern, regexp2.None); err != nil {
		return m
	}

	// Anchored separately so the validity check sees the pattern alone.
	if re, err := regexp2.Compile(`\A(?:`+pattern+`)\z`, regexp2.None); err == nil {
		m.re = re
	}

	return m
}

// Match reports whether token satisfies m.
func (m Matcher) Match(token string) bool {
	if token == m.pattern {
		return true
	}

	if m.re == nil {
		return false
	}

	ok, err := m.re.MatchString(token)

	return err == nil && ok
}

// Pattern returns the source text of m.
func (m Matcher) Pattern() string { return m.pattern }

// IsPattern reports whether m compiled as a regular expression.
func (m Matcher) IsPattern() bool { return m.re != nil }

func (m Matcher) String() string {
	if m.IsPattern() && !isLiteral(m.pattern) {
		return "/" + m.pattern + "/"
	}

	return strconv.Quote(m.pattern)
}

// isLiteral reports whether pattern is plain ASCII letters, which read the
// same as a literal and a regular expression.
func isLiteral(pattern string) bool {
	for i := range len(pattern) {
		c := pattern[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}

	return pattern != ""
}
