// Package location parses location expressions into a prefix, a literal root and a wildcard
// sub pattern.
package location

import (
	"strings"

	"github.com/lyraproj/locator/api"
	"github.com/lyraproj/locator/matcher"
)

// PrefixKind describes how the prefix of an expression affects resolution
type PrefixKind int

const (
	// None is a plain path that is resolved by the primary provider
	None = PrefixKind(iota)

	// MultiProvider is an expression that starts with the prefix that makes a lookup
	// search all visible providers
	MultiProvider

	// Scheme is any other scheme prefix. It is kept verbatim in the root literal.
	Scheme
)

func (k PrefixKind) String() string {
	switch k {
	case MultiProvider:
		return `multi-provider`
	case Scheme:
		return `scheme`
	default:
		return `none`
	}
}

// Expression is a parsed location expression. Root + SubPattern always equals the original
// expression.
type Expression struct {
	// Original is the expression as given
	Original string

	// PrefixKind is the kind of prefix
	PrefixKind PrefixKind

	// Prefix is the verbatim prefix including the colon, or the empty string
	Prefix string

	// Root is the literal root, including the prefix
	Root string

	// SubPattern is the wildcard part that follows Root. It is empty when the expression
	// contains no pattern.
	SubPattern string
}

// HasPattern returns true when the expression contains a wildcard after its prefix
func (e *Expression) HasPattern() bool {
	return e.SubPattern != ``
}

// Path returns the expression without its prefix
func (e *Expression) Path() string {
	return e.Original[len(e.Prefix):]
}

// Parse parses the given expression
func Parse(expression string) *Expression {
	prefix := Prefix(expression)
	kind := None
	switch {
	case prefix == api.MultiProviderPrefix:
		kind = MultiProvider
	case prefix != ``:
		kind = Scheme
	}
	e := &Expression{Original: expression, PrefixKind: kind, Prefix: prefix, Root: expression}
	if matcher.IsPattern(expression[len(prefix):]) {
		e.Root = DetermineRoot(expression)
		e.SubPattern = expression[len(e.Root):]
	}
	return e
}

// HasPattern returns true if the given expression contains a wildcard after its prefix
func HasPattern(expression string) bool {
	return matcher.IsPattern(expression[len(Prefix(expression)):])
}

// DetermineRoot returns the literal root of the given expression. The root is the longest
// part of the expression that ends with a '/' and contains no wildcard after the prefix. When
// no such part exists, the root is the prefix.
func DetermineRoot(expression string) string {
	prefixEnd := len(Prefix(expression))
	rootEnd := len(expression)
	for rootEnd > prefixEnd && matcher.IsPattern(expression[prefixEnd:rootEnd]) {
		from := rootEnd - 2
		if from < 0 {
			rootEnd = 0
			break
		}
		rootEnd = strings.LastIndex(expression[:from+1], `/`) + 1
	}
	if rootEnd < prefixEnd {
		rootEnd = prefixEnd
	}
	return expression[:rootEnd]
}

// Prefix returns the scheme prefix of the given expression including the colon, or the empty
// string if the expression has no prefix. A prefix is a leading run of at least two letters,
// digits, '+', '-' or '.' that starts with a letter and is followed by a colon. Single letters
// are Windows drive letters, not schemes.
func Prefix(expression string) string {
	for i, c := range expression {
		switch {
		case c == ':':
			if i < 2 {
				return ``
			}
			return expression[:i+1]
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return ``
		}
	}
	return ``
}
