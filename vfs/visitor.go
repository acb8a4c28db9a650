package vfs

import (
	"strings"

	"github.com/lyraproj/locator/api"
	"github.com/lyraproj/locator/matcher"
)

// PatternVisitor collects the nodes whose path relative to a root path matches a sub pattern.
type PatternVisitor struct {
	fs         api.VirtualFilesystem
	rootPath   string
	subPattern string
	matcher    *matcher.Matcher
	result     *api.ResultSet
}

// NewPatternVisitor creates a visitor that matches node paths relative to rootPath against the
// given sub pattern. A nil matcher means matcher.Default.
func NewPatternVisitor(fs api.VirtualFilesystem, rootPath, subPattern string, m *matcher.Matcher) *PatternVisitor {
	if m == nil {
		m = matcher.Default
	}
	if !strings.HasSuffix(rootPath, `/`) {
		rootPath += `/`
	}
	return &PatternVisitor{fs: fs, rootPath: rootPath, subPattern: subPattern, matcher: m, result: api.NewResultSet(8)}
}

func (v *PatternVisitor) Visit(n api.VirtualNode) {
	p := n.Path()
	if !strings.HasPrefix(p, v.rootPath) {
		return
	}
	if v.matcher.Match(v.subPattern, p[len(v.rootPath):]) {
		v.result.Add(v.fs.Resource(n))
	}
}

// Resources returns the resources of the matching nodes in visiting order
func (v *PatternVisitor) Resources() *api.ResultSet {
	return v.result
}

// FindMatching returns the resources for all nodes below root that match the sub pattern
func FindMatching(fs api.VirtualFilesystem, root api.VirtualNode, subPattern string, m *matcher.Matcher) (*api.ResultSet, error) {
	v := NewPatternVisitor(fs, root.Path(), subPattern, m)
	if err := fs.Visit(root, v); err != nil {
		return nil, err
	}
	return v.Resources(), nil
}
