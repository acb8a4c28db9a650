// Package matcher implements Ant style path pattern matching.
//
// Patterns and paths are split on '/' into segments. Within a segment, '*' matches any
// run of characters and '?' matches exactly one character. A segment that consists of
// '**' matches zero or more whole segments.
package matcher

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Separator is the path separator used by patterns and paths
const Separator = `/`

const doubleStar = `**`

// Matcher matches paths against Ant style patterns. A Matcher is immutable and safe for
// concurrent use.
type Matcher struct {
	caseInsensitive bool
}

// Option configures a Matcher
type Option func(*Matcher)

// CaseInsensitive makes the matcher compare literal characters without regard to case
func CaseInsensitive() Option {
	return func(m *Matcher) {
		m.caseInsensitive = true
	}
}

// Default is a case sensitive Matcher
var Default = New()

// New creates a new Matcher. The matcher is case sensitive unless the CaseInsensitive option
// is given.
func New(options ...Option) *Matcher {
	m := &Matcher{}
	for _, o := range options {
		o(m)
	}
	return m
}

// IsCaseInsensitive returns true if the matcher ignores case
func (m *Matcher) IsCaseInsensitive() bool {
	return m.caseInsensitive
}

// IsPattern returns true if the given string contains a wildcard
func (m *Matcher) IsPattern(s string) bool {
	return IsPattern(s)
}

// IsPattern returns true if the given string contains '*' or '?'. A '**' segment is
// covered by the former.
func IsPattern(s string) bool {
	return strings.ContainsAny(s, `*?`)
}

// Match returns true if the given path is fully matched by the given pattern
func (m *Matcher) Match(pattern, path string) bool {
	return m.doMatch(pattern, path, true)
}

// MatchStart returns true if the given path could be the start of a path that is fully
// matched by the given pattern.
func (m *Matcher) MatchStart(pattern, path string) bool {
	return m.doMatch(pattern, path, false)
}

func (m *Matcher) doMatch(pattern, path string, full bool) bool {
	if strings.HasPrefix(path, Separator) != strings.HasPrefix(pattern, Separator) {
		return false
	}
	trailing := strings.HasSuffix(pattern, Separator) == strings.HasSuffix(path, Separator)
	return m.matchSegments(tokenize(pattern), tokenize(path), full, trailing)
}

// matchSegments matches the pattern segments against the path segments from left to
// right. A '**' segment is matched by trying to consume zero, one, two, etc. path segments
// until the rest of the pattern matches the rest of the path.
func (m *Matcher) matchSegments(patt, path []string, full, trailing bool) bool {
	for len(patt) > 0 {
		p := patt[0]
		if p == doubleStar {
			rest := patt[1:]
			for len(rest) > 0 && rest[0] == doubleStar {
				rest = rest[1:]
			}
			if len(rest) == 0 {
				return true
			}
			for i := 0; i <= len(path); i++ {
				if m.matchSegments(rest, path[i:], full, trailing) {
					return true
				}
			}
			return false
		}
		if len(path) == 0 {
			// Path exhausted while pattern segments remain.
			return !full
		}
		if !m.matchSegment(p, path[0]) {
			return false
		}
		patt = patt[1:]
		path = path[1:]
	}
	return len(path) == 0 && trailing
}

// matchSegment matches a single segment that may contain '*' and '?'.
func (m *Matcher) matchSegment(pattern, str string) bool {
	if !IsPattern(pattern) {
		if m.caseInsensitive {
			return strings.EqualFold(pattern, str)
		}
		return pattern == str
	}

	// Iterative wildcard matching. On mismatch, backtrack to the last '*' and let it
	// consume one more character.
	pi, si := 0, 0
	starP, starS := -1, 0
	for si < len(str) {
		if pi < len(pattern) {
			pc, pw := utf8.DecodeRuneInString(pattern[pi:])
			sc, sw := utf8.DecodeRuneInString(str[si:])
			switch {
			case pc == '*':
				starP = pi
				starS = si
				pi += pw
				continue
			case pc == '?' || m.equalRune(pc, sc):
				pi += pw
				si += sw
				continue
			}
		}
		if starP < 0 {
			return false
		}
		_, sw := utf8.DecodeRuneInString(str[starS:])
		starS += sw
		si = starS
		pi = starP + 1
	}
	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}

func (m *Matcher) equalRune(a, b rune) bool {
	if a == b {
		return true
	}
	return m.caseInsensitive && unicode.ToLower(a) == unicode.ToLower(b)
}

func tokenize(s string) []string {
	parts := strings.Split(s, Separator)
	tokens := parts[:0]
	for _, p := range parts {
		if p != `` {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
