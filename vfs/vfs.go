// Package vfs provides a virtual filesystem backed by go-billy and the visitor that finds the
// nodes of such a filesystem that match a pattern.
package vfs

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/locator/api"
)

// FS is an api.VirtualFilesystem over a billy.Filesystem. All node paths are absolute and use
// '/' as the separator.
type FS struct {
	bfs    billy.Filesystem
	logger hclog.Logger
}

// New returns a virtual filesystem that exposes the given billy filesystem
func New(bfs billy.Filesystem) *FS {
	return &FS{bfs: bfs, logger: hclog.Default().Named(`vfs`)}
}

// NewMemory returns an empty in-memory virtual filesystem
func NewMemory() *FS {
	return New(memfs.New())
}

// NewOS returns a virtual filesystem rooted at the given directory of the OS filesystem
func NewOS(dir string) *FS {
	return New(osfs.New(dir))
}

// Billy returns the underlying billy filesystem
func (f *FS) Billy() billy.Filesystem {
	return f.bfs
}

// Node returns the node at the given path. The path is made absolute and cleaned.
func (f *FS) Node(p string) api.VirtualNode {
	return &node{fs: f, path: cleanPath(p)}
}

// Visit calls the visitor once for every node below the given root. The root itself is not
// visited. A root that does not exist has no nodes. Directories that cannot be read are logged
// and skipped.
func (f *FS) Visit(root api.VirtualNode, visitor api.Visitor) error {
	rp := cleanPath(root.Path())
	children, err := f.bfs.ReadDir(rp)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Warn(`unable to read directory`, `path`, rp, `error`, err)
		}
		return nil
	}
	for _, c := range children {
		err = util.Walk(f.bfs, f.bfs.Join(rp, c.Name()), func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				// an unreadable directory is still visited, but not entered
				f.logger.Warn(`unable to read directory`, `path`, p, `error`, err)
				if fi == nil {
					return nil
				}
			}
			visitor.Visit(f.Node(p))
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Resource returns the resource for the given node
func (f *FS) Resource(n api.VirtualNode) api.Resource {
	return &virtualResource{fs: f, path: cleanPath(n.Path())}
}

// ResourceAt returns the resource for the node at the given path
func (f *FS) ResourceAt(p string) api.Resource {
	return f.Resource(f.Node(p))
}

func (f *FS) stat(p string) (os.FileInfo, error) {
	return f.bfs.Stat(p)
}

func (f *FS) isDir(p string) bool {
	if p == `/` {
		return true
	}
	fi, err := f.stat(p)
	return err == nil && fi.IsDir()
}

func cleanPath(p string) string {
	return path.Clean(`/` + filepath.ToSlash(p))
}

type node struct {
	fs   *FS
	path string
}

func (n *node) Path() string {
	return n.path
}

func (n *node) Exists() bool {
	if n.path == `/` {
		return true
	}
	_, err := n.fs.stat(n.path)
	return err == nil
}

func (n *node) IsDir() bool {
	return n.fs.isDir(n.path)
}

type virtualResource struct {
	fs   *FS
	path string
}

func (r *virtualResource) Location() string {
	return api.VirtualPrefix + r.path
}

func (r *virtualResource) Kind() api.Kind {
	return api.KindVirtual
}

// Path returns the path of the resource within its virtual filesystem
func (r *virtualResource) Path() string {
	return r.path
}

// Node returns the node of the resource
func (r *virtualResource) Node() api.VirtualNode {
	return r.fs.Node(r.path)
}

func (r *virtualResource) Exists() bool {
	return r.Node().Exists()
}

func (r *virtualResource) Open() (io.ReadCloser, error) {
	if r.fs.isDir(r.path) {
		return nil, fmt.Errorf(`'%s' is a directory`, r.Location())
	}
	return r.fs.bfs.Open(r.path)
}

// CreateRelative resolves the path against this node when it is a directory and against its
// parent otherwise.
func (r *virtualResource) CreateRelative(relativePath string) (api.Resource, error) {
	base := r.path
	if !r.fs.isDir(base) {
		base = path.Dir(base)
	}
	relativePath = filepath.ToSlash(relativePath)
	if strings.HasPrefix(relativePath, `/`) {
		return r.fs.ResourceAt(relativePath), nil
	}
	return r.fs.ResourceAt(path.Join(base, relativePath)), nil
}

func (r *virtualResource) String() string {
	return fmt.Sprintf(`virtual{path:%s}`, r.path)
}
