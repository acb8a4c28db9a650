package resource

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lyraproj/locator/api"
)

type file struct {
	path string
}

// NewFile returns a resource for the file or directory at the given OS path. A relative path
// is made absolute.
func NewFile(path string) api.FileResource {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &file{path: filepath.Clean(path)}
}

func (f *file) Location() string {
	return api.FileURL(f.path)
}

func (f *file) Kind() api.Kind {
	return api.KindFile
}

func (f *file) Path() string {
	return f.path
}

func (f *file) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}

func (f *file) Open() (io.ReadCloser, error) {
	fi, err := os.Stat(f.path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, fmt.Errorf(`'%s' is a directory`, f.path)
	}
	return os.Open(f.path)
}

// CreateRelative resolves the path against this file when it is a directory and against its
// parent directory otherwise.
func (f *file) CreateRelative(relativePath string) (api.Resource, error) {
	base := filepath.ToSlash(f.path)
	if fi, err := os.Stat(f.path); err == nil && fi.IsDir() && !strings.HasSuffix(base, `/`) {
		base += `/`
	}
	return NewFile(filepath.FromSlash(applyRelativePath(base, relativePath))), nil
}

func (f *file) String() string {
	return fmt.Sprintf(`file{path:%s}`, f.path)
}
