// Package testutil creates file trees and archives for tests.
package testutil

import (
	"archive/tar"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
)

// WriteTree creates the given files below root. A name that ends with '/' creates an empty
// directory. Content defaults to the name of the file.
func WriteTree(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(root, filepath.FromSlash(n))
		if strings.HasSuffix(n, `/`) {
			require.NoError(t, os.MkdirAll(p, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(n), 0644))
	}
}

// WriteZip creates a zip archive at the given path that holds the given entries in the given
// order. A name that ends with '/' becomes a directory entry. Content defaults to the name of
// the entry.
func WriteZip(t *testing.T, path string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	zw := zip.NewWriter(f)
	for _, n := range names {
		w, err := zw.Create(n)
		require.NoError(t, err)
		if !strings.HasSuffix(n, `/`) {
			_, err = w.Write([]byte(n))
			require.NoError(t, err)
		}
	}
	require.NoError(t, zw.Close())
}

// WriteTar creates a tar archive at the given path, gzip compressed when compress is true. A
// name that ends with '/' becomes a directory entry. Content defaults to the name of the entry.
func WriteTar(t *testing.T, path string, compress bool, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	var gz *gzip.Writer
	tw := tar.NewWriter(f)
	if compress {
		gz = gzip.NewWriter(f)
		tw = tar.NewWriter(gz)
	}
	for _, n := range names {
		if strings.HasSuffix(n, `/`) {
			require.NoError(t, tw.WriteHeader(&tar.Header{Name: n, Typeflag: tar.TypeDir, Mode: 0755}))
			continue
		}
		require.NoError(t, tw.WriteHeader(&tar.Header{Name: n, Typeflag: tar.TypeReg, Mode: 0644, Size: int64(len(n))}))
		_, err = tw.Write([]byte(n))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	if gz != nil {
		require.NoError(t, gz.Close())
	}
}

// Slash returns the given OS path with '/' separators
func Slash(path string) string {
	return filepath.ToSlash(path)
}
