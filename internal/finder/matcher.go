package finder

import (
	"fmt"
	"regexp"
	"strings"
)

// matcher decides whether a base file name satisfies the configured
// pattern. It is compiled once per Finder so the glob/regex branch is not
// re-taken for every file.
type matcher interface {
	matches(name string) bool
}

// newMatcher compiles pattern into a glob or regex matcher.
//
// The two modes anchor differently: a glob must match the entire file
// name, while a regex matches if any substring of the name matches.
// Callers wanting a fully anchored regex must write ^...$ themselves.
func newMatcher(pattern string, useRegex, ignoreCase bool) (matcher, error) {
	if useRegex {
		return newRegexMatcher(pattern, ignoreCase)
	}
	return newGlobMatcher(pattern, ignoreCase)
}

type regexMatcher struct {
	re *regexp.Regexp
}

func newRegexMatcher(pattern string, ignoreCase bool) (*regexMatcher, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern: %w", err)
	}
	return &regexMatcher{re: re}, nil
}

func (m *regexMatcher) matches(name string) bool {
	return m.re.MatchString(name)
}

type globMatcher struct {
	re *regexp.Regexp
}

// newGlobMatcher translates a glob into an anchored regular expression.
// Only * and ? are wildcards; regex metacharacters in the pattern are
// escaped first so they match literally.
func newGlobMatcher(pattern string, ignoreCase bool) (*globMatcher, error) {
	if pattern == "" {
		pattern = "*"
	}
	expr := regexp.QuoteMeta(pattern)
	expr = strings.ReplaceAll(expr, `\*`, ".*")
	expr = strings.ReplaceAll(expr, `\?`, ".")
	expr = "^" + expr + "$"
	if ignoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}
	return &globMatcher{re: re}, nil
}

func (m *globMatcher) matches(name string) bool {
	return m.re.MatchString(name)
}
