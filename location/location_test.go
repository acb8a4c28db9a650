package location_test

import (
	"testing"

	"github.com/lyraproj/locator/location"
	"github.com/stretchr/testify/require"
)

func TestDetermineRoot(t *testing.T) {
	require.Equal(t, `/WEB-INF/`, location.DetermineRoot(`/WEB-INF/*-context.xml`))
	require.Equal(t, `a/`, location.DetermineRoot(`a/b*/c.txt`))
	require.Equal(t, ``, location.DetermineRoot(`*.xml`))
	require.Equal(t, `classpath-all:`, location.DetermineRoot(`classpath-all:*.xml`))
	require.Equal(t, `classpath-all:/META-INF/`, location.DetermineRoot(`classpath-all:/META-INF/**/*.xml`))
	require.Equal(t, `archive:!/`, location.DetermineRoot(`archive:!/**/*.properties`))
	require.Equal(t, `archive:file:/opt/app.zip!/conf/`, location.DetermineRoot(`archive:file:/opt/app.zip!/conf/*.yaml`))
	require.Equal(t, `/no/pattern/here.txt`, location.DetermineRoot(`/no/pattern/here.txt`))
}

func TestPrefix(t *testing.T) {
	require.Equal(t, `classpath-all:`, location.Prefix(`classpath-all:/x`))
	require.Equal(t, `file:`, location.Prefix(`file:/x`))
	require.Equal(t, `vfs+ext:`, location.Prefix(`vfs+ext:/x`))
	require.Equal(t, ``, location.Prefix(`C:/windows/*.ini`))
	require.Equal(t, ``, location.Prefix(`/a/b:c/*.txt`))
	require.Equal(t, ``, location.Prefix(`1abc:/x`))
	require.Equal(t, ``, location.Prefix(`plain/path`))
}

func TestParse_plain(t *testing.T) {
	e := location.Parse(`/conf/**/*.yaml`)
	require.Equal(t, location.None, e.PrefixKind)
	require.Equal(t, ``, e.Prefix)
	require.Equal(t, `/conf/`, e.Root)
	require.Equal(t, `**/*.yaml`, e.SubPattern)
	require.True(t, e.HasPattern())
	require.Equal(t, e.Original, e.Root+e.SubPattern)
}

func TestParse_multiProvider(t *testing.T) {
	e := location.Parse(`classpath-all:META-INF/*.properties`)
	require.Equal(t, location.MultiProvider, e.PrefixKind)
	require.Equal(t, `classpath-all:META-INF/`, e.Root)
	require.Equal(t, `*.properties`, e.SubPattern)
	require.Equal(t, `META-INF/*.properties`, e.Path())
}

func TestParse_scheme(t *testing.T) {
	e := location.Parse(`file:/etc/app/*.conf`)
	require.Equal(t, location.Scheme, e.PrefixKind)
	require.Equal(t, `file:`, e.Prefix)
	require.Equal(t, `file:/etc/app/`, e.Root)
	require.Equal(t, `*.conf`, e.SubPattern)
	require.Equal(t, `scheme`, e.PrefixKind.String())
}

func TestParse_literal(t *testing.T) {
	e := location.Parse(`classpath-all:META-INF/services/x`)
	require.False(t, e.HasPattern())
	require.Equal(t, e.Original, e.Root)
	require.Equal(t, ``, e.SubPattern)
}

func TestHasPattern_ignoresPrefix(t *testing.T) {
	require.False(t, location.HasPattern(`file:/x/y`))
	require.True(t, location.HasPattern(`file:/x/?`))
}
