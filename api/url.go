package api

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

// FileURL returns the file: URL of the given OS path. The path is made absolute and escaped so
// that ParseFileURL returns it unchanged.
func FileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, `/`) {
		p = `/` + p
	}
	return (&url.URL{Scheme: `file`, Path: p, OmitHost: true}).String()
}

// ParseFileURL returns the OS path denoted by the given file: URL. A URL that cannot be
// parsed is parsed manually by stripping its scheme. Strings without a file: scheme are
// returned unchanged as OS paths.
func ParseFileURL(u string) (string, error) {
	if !strings.HasPrefix(u, FilePrefix) {
		if u == `` {
			return ``, fmt.Errorf(`empty file location`)
		}
		return filepath.FromSlash(u), nil
	}
	var p string
	if pu, err := url.Parse(u); err == nil {
		p = pu.Path
		if p == `` {
			p = pu.Opaque
		}
	} else {
		p = strings.TrimPrefix(strings.TrimPrefix(u, FilePrefix), `//`)
	}
	if p == `` {
		return ``, fmt.Errorf(`'%s' does not denote a file`, u)
	}
	if runtime.GOOS == `windows` && len(p) > 2 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	return filepath.FromSlash(p), nil
}
