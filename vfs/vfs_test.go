package vfs_test

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/lyraproj/locator/api"
	"github.com/lyraproj/locator/internal/testutil"
	"github.com/lyraproj/locator/matcher"
	"github.com/lyraproj/locator/vfs"
	"github.com/stretchr/testify/require"
)

func memory(t *testing.T, names ...string) *vfs.FS {
	t.Helper()
	fs := vfs.NewMemory()
	for _, n := range names {
		require.NoError(t, util.WriteFile(fs.Billy(), n, []byte(n), 0644))
	}
	return fs
}

type collector []string

func (c *collector) Visit(n api.VirtualNode) {
	*c = append(*c, n.Path())
}

func TestVisit_excludesRoot(t *testing.T) {
	fs := memory(t, `/conf/a.yaml`, `/conf/sub/b.yaml`, `/other.txt`)
	var c collector
	require.NoError(t, fs.Visit(fs.Node(`/conf`), &c))
	require.Equal(t, collector{`/conf/a.yaml`, `/conf/sub`, `/conf/sub/b.yaml`}, c)
}

type lockedFS struct {
	billy.Filesystem
	locked string
}

func (l *lockedFS) ReadDir(p string) ([]os.FileInfo, error) {
	if path.Clean(filepath.ToSlash(p)) == l.locked {
		return nil, &os.PathError{Op: `open`, Path: p, Err: os.ErrPermission}
	}
	return l.Filesystem.ReadDir(p)
}

func TestVisit_unreadableDirectory(t *testing.T) {
	mfs := memfs.New()
	for _, n := range []string{`/conf/a.yaml`, `/conf/locked/b.yaml`, `/conf/open/c.yaml`} {
		require.NoError(t, util.WriteFile(mfs, n, []byte(n), 0644))
	}
	fs := vfs.New(&lockedFS{Filesystem: mfs, locked: `/conf/locked`})

	var c collector
	require.NoError(t, fs.Visit(fs.Node(`/conf`), &c))
	require.Equal(t, collector{`/conf/a.yaml`, `/conf/locked`, `/conf/open`, `/conf/open/c.yaml`}, c)

	rs, err := vfs.FindMatching(fs, fs.Node(`/conf`), `**/*.yaml`, matcher.Default)
	require.NoError(t, err)
	require.Equal(t, []string{`vfs:/conf/a.yaml`, `vfs:/conf/open/c.yaml`}, rs.Locations())

	// An unreadable root has no nodes
	c = nil
	fs = vfs.New(&lockedFS{Filesystem: mfs, locked: `/conf`})
	require.NoError(t, fs.Visit(fs.Node(`/conf`), &c))
	require.Empty(t, c)
}

func TestVisit_missingRoot(t *testing.T) {
	fs := memory(t, `/conf/a.yaml`)
	var c collector
	require.NoError(t, fs.Visit(fs.Node(`/nope`), &c))
	require.Empty(t, c)
}

func TestNode(t *testing.T) {
	fs := memory(t, `/conf/a.yaml`)
	require.True(t, fs.Node(`/`).IsDir())
	require.True(t, fs.Node(`conf`).IsDir())
	require.Equal(t, `/conf`, fs.Node(`conf/`).Path())
	require.True(t, fs.Node(`/conf/a.yaml`).Exists())
	require.False(t, fs.Node(`/conf/a.yaml`).IsDir())
	require.False(t, fs.Node(`/conf/b.yaml`).Exists())
}

func TestResource(t *testing.T) {
	fs := memory(t, `/conf/a.yaml`)
	r := fs.ResourceAt(`/conf/a.yaml`)
	require.Equal(t, api.KindVirtual, r.Kind())
	require.Equal(t, `vfs:/conf/a.yaml`, r.Location())
	require.True(t, r.Exists())

	rc, err := r.Open()
	require.NoError(t, err)
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, `/conf/a.yaml`, string(b))

	_, err = fs.ResourceAt(`/conf`).Open()
	require.Error(t, err)

	rel, err := r.CreateRelative(`b.yaml`)
	require.NoError(t, err)
	require.Equal(t, `vfs:/conf/b.yaml`, rel.Location())
	require.False(t, rel.Exists())

	rel, err = fs.ResourceAt(`/conf`).CreateRelative(`sub/c.yaml`)
	require.NoError(t, err)
	require.Equal(t, `vfs:/conf/sub/c.yaml`, rel.Location())
}

func TestFindMatching(t *testing.T) {
	fs := memory(t, `/conf/a.yaml`, `/conf/sub/b.yaml`, `/conf/sub/c.txt`, `/other/d.yaml`)
	rs, err := vfs.FindMatching(fs, fs.Node(`/conf`), `**/*.yaml`, nil)
	require.NoError(t, err)
	require.Equal(t, []string{`vfs:/conf/a.yaml`, `vfs:/conf/sub/b.yaml`}, rs.Locations())

	rs, err = vfs.FindMatching(fs, fs.Node(`/`), `*/sub`, nil)
	require.NoError(t, err)
	require.Equal(t, []string{`vfs:/conf/sub`}, rs.Locations())
}

func TestFindMatching_caseInsensitive(t *testing.T) {
	fs := memory(t, `/Conf/A.YAML`)
	rs, err := vfs.FindMatching(fs, fs.Node(`/Conf`), `*.yaml`, matcher.New(matcher.CaseInsensitive()))
	require.NoError(t, err)
	require.Equal(t, 1, rs.Len())
}

func TestNewOS(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, `conf/a.yaml`, `conf/b.txt`)
	fs := vfs.NewOS(dir)
	rs, err := vfs.FindMatching(fs, fs.Node(`/`), `**/*.yaml`, nil)
	require.NoError(t, err)
	require.Equal(t, []string{`vfs:/conf/a.yaml`}, rs.Locations())
}
