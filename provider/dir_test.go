package provider_test

import (
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/util"
	"github.com/lyraproj/locator/api"
	"github.com/lyraproj/locator/archive"
	"github.com/lyraproj/locator/internal/testutil"
	"github.com/lyraproj/locator/provider"
	"github.com/lyraproj/locator/vfs"
	"github.com/stretchr/testify/require"
)

func TestResolve_literal(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, `one/conf/x.properties`, `two/conf/x.properties`, `two/conf/y.properties`)
	parent := provider.New(`parent`, nil, []string{filepath.Join(dir, `two`)})
	p := provider.New(`child`, parent, []string{filepath.Join(dir, `one`)})

	r := p.Resolve(`conf/x.properties`)
	require.True(t, r.Exists())
	require.Equal(t, filepath.Join(dir, `one`, `conf`, `x.properties`), r.(api.FileResource).Path())

	r = p.Resolve(`classpath:/conf/y.properties`)
	require.True(t, r.Exists())
	require.Equal(t, filepath.Join(dir, `two`, `conf`, `y.properties`), r.(api.FileResource).Path())

	r = p.Resolve(`conf/z.properties`)
	require.False(t, r.Exists())
	require.Equal(t, api.KindProvider, r.Kind())
	require.Equal(t, `classpath:conf/z.properties`, r.Location())
}

func TestResolve_archiveRoot(t *testing.T) {
	dir := t.TempDir()
	zp := filepath.Join(dir, `lib`, `app.zip`)
	testutil.WriteZip(t, zp, `conf/x.properties`)
	p := provider.New(`p`, nil, []string{filepath.Join(dir, `missing`), zp})

	r := p.Resolve(`conf/x.properties`)
	require.True(t, r.Exists())
	require.Equal(t, archive.Location(zp, `conf/x.properties`), r.Location())

	r = p.Resolve(`archive:!/conf/x.properties`)
	require.Equal(t, archive.Location(zp, `conf/x.properties`), r.Location())
	require.True(t, r.Exists())

	roots, err := p.ArchiveRoots()
	require.NoError(t, err)
	require.Equal(t, []string{api.FileURL(zp)}, roots)
}

func TestResolve_prefixes(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, `conf/a.yaml`)
	p := provider.New(`p`, nil, nil, provider.WithBase(dir))

	r := p.Resolve(`file:conf/a.yaml`)
	require.True(t, r.Exists())
	require.Equal(t, api.KindFile, r.Kind())

	r = p.Resolve(api.FileURL(filepath.Join(dir, `conf`, `a.yaml`)))
	require.True(t, r.Exists())

	r = p.Resolve(`archive:file:lib/app.zip!/x`)
	require.Equal(t, api.KindArchive, r.Kind())
	require.Equal(t, filepath.Join(dir, `lib`, `app.zip`), r.(api.ArchiveResource).ArchivePath())

	r = p.Resolve(`acme:thing`)
	require.Equal(t, `acme:thing`, r.Location())
	require.False(t, r.Exists())

	// No virtual filesystem configured
	r = p.Resolve(`vfs:/conf`)
	require.Equal(t, api.KindProvider, r.Kind())
}

func TestResolve_virtual(t *testing.T) {
	fs := vfs.NewMemory()
	require.NoError(t, util.WriteFile(fs.Billy(), `/conf/a.yaml`, []byte(`a`), 0644))
	p := provider.New(`p`, nil, nil, provider.WithVirtualFilesystem(fs))

	r := p.Resolve(`vfs:/conf/a.yaml`)
	require.Equal(t, api.KindVirtual, r.Kind())
	require.True(t, r.Exists())
}

func TestResolveAll(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, `one/x.properties`, `two/x.properties`, `three/`)
	zp := filepath.Join(dir, `app.zip`)
	testutil.WriteZip(t, zp, `x.properties`)

	parent := provider.New(`parent`, nil, []string{filepath.Join(dir, `one`), zp})
	p := provider.New(`child`, parent, []string{filepath.Join(dir, `two`), filepath.Join(dir, `three`)})

	var locations []string
	for _, r := range p.ResolveAll(`/x.properties`) {
		locations = append(locations, r.Location())
	}
	require.Equal(t, []string{
		api.FileURL(filepath.Join(dir, `one`, `x.properties`)),
		archive.Location(zp, `x.properties`),
		api.FileURL(filepath.Join(dir, `two`, `x.properties`)),
	}, locations)

	// Empty name yields directory roots only
	locations = nil
	for _, r := range p.ResolveAll(``) {
		locations = append(locations, r.Location())
	}
	require.Equal(t, []string{
		api.FileURL(filepath.Join(dir, `one`)),
		api.FileURL(filepath.Join(dir, `two`)),
		api.FileURL(filepath.Join(dir, `three`)),
	}, locations)
}

func TestNew_relativeRoots(t *testing.T) {
	dir := t.TempDir()
	p := provider.New(`p`, nil, []string{`conf`, `./lib/../lib/app.zip`}, provider.WithBase(dir))
	require.Equal(t, []string{filepath.Join(dir, `conf`), filepath.Join(dir, `lib`, `app.zip`)}, p.Roots())
	require.Equal(t, `p`, p.Name())
	require.Nil(t, p.Parent())
}
