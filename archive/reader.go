// Package archive reads the entries of zip and tar archives and matches them against
// patterns.
package archive

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
)

// Entry is a named entry in an archive. Names use '/' as the separator and never start with
// '/' or './'.
type Entry struct {
	Name string
	Dir  bool
}

// Reader provides access to the entries of an open archive
type Reader interface {
	// Path returns the file system path of the archive
	Path() string

	// Entries returns all entries of the archive in the order they are stored
	Entries() []Entry

	// Open returns a stream that reads the content of the named entry
	Open(name string) (io.ReadCloser, error)

	// Close releases the resources held by the reader
	Close() error
}

var archiveExtensions = []string{`.zip`, `.jar`, `.war`, `.ear`, `.tar`, `.tgz`, `.tar.gz`}

// IsArchiveFile returns true if the given path has the extension of a supported archive
func IsArchiveFile(path string) bool {
	lp := strings.ToLower(path)
	for _, ext := range archiveExtensions {
		if strings.HasSuffix(lp, ext) {
			return true
		}
	}
	return false
}

// Open opens the archive at the given path. The format is determined by the content of the
// file, not by its name.
func Open(path string) (Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	magic := make([]byte, 512)
	n, err := io.ReadFull(f, magic)
	_ = f.Close()
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf(`unable to read magic bytes of '%s': %w`, path, err)
	}
	magic = magic[:n]

	switch {
	case isZip(magic):
		return openZip(path)
	case isGzip(magic):
		return openTar(path, true)
	case isTar(magic):
		return openTar(path, false)
	}
	return nil, fmt.Errorf(`'%s' is not a supported archive`, path)
}

func isZip(magic []byte) bool {
	return bytes.HasPrefix(magic, []byte{'P', 'K', 3, 4}) || bytes.HasPrefix(magic, []byte{'P', 'K', 5, 6})
}

func isGzip(magic []byte) bool {
	return bytes.HasPrefix(magic, []byte{0x1f, 0x8b})
}

func isTar(magic []byte) bool {
	return len(magic) >= 262 && bytes.Equal(magic[257:262], []byte(`ustar`))
}

// normalizeName converts the given entry name to use '/' and strips leading './' and '/'.
func normalizeName(name string) string {
	name = strings.ReplaceAll(name, `\`, `/`)
	for {
		switch {
		case strings.HasPrefix(name, `./`):
			name = name[2:]
		case strings.HasPrefix(name, `/`):
			name = name[1:]
		default:
			return name
		}
	}
}

type zipReader struct {
	path  string
	rc    *zip.ReadCloser
	files map[string]*zip.File
}

func openZip(path string) (Reader, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf(`unable to open zip archive '%s': %w`, path, err)
	}
	files := make(map[string]*zip.File, len(rc.File))
	for _, f := range rc.File {
		files[normalizeName(f.Name)] = f
	}
	return &zipReader{path: path, rc: rc, files: files}, nil
}

func (z *zipReader) Path() string {
	return z.path
}

func (z *zipReader) Entries() []Entry {
	entries := make([]Entry, len(z.rc.File))
	for i, f := range z.rc.File {
		n := normalizeName(f.Name)
		entries[i] = Entry{Name: n, Dir: strings.HasSuffix(n, `/`)}
	}
	return entries
}

func (z *zipReader) Open(name string) (io.ReadCloser, error) {
	if f, ok := z.files[name]; ok {
		return f.Open()
	}
	return nil, &os.PathError{Op: `open`, Path: z.path + `!/` + name, Err: os.ErrNotExist}
}

func (z *zipReader) Close() error {
	return z.rc.Close()
}

// tarReader indexes the entries of a tar archive once. The archive file is only kept open
// while an entry is being read.
type tarReader struct {
	path       string
	compressed bool
	entries    []Entry
}

func openTar(path string, compressed bool) (Reader, error) {
	t := &tarReader{path: path, compressed: compressed}
	err := t.each(func(h *tar.Header, _ io.Reader) bool {
		n := normalizeName(h.Name)
		if n == `` {
			return true
		}
		dir := h.Typeflag == tar.TypeDir || strings.HasSuffix(n, `/`)
		if dir && !strings.HasSuffix(n, `/`) {
			n += `/`
		}
		t.entries = append(t.entries, Entry{Name: n, Dir: dir})
		return true
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// each calls f for each header in the archive until f returns false.
func (t *tarReader) each(f func(*tar.Header, io.Reader) bool) error {
	file, err := os.Open(t.path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	var r io.Reader = file
	if t.compressed {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return fmt.Errorf(`unable to open gzip stream of '%s': %w`, t.path, err)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	tr := tar.NewReader(r)
	for {
		h, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf(`unable to read tar header in '%s': %w`, t.path, err)
		}
		if !f(h, tr) {
			return nil
		}
	}
}

func (t *tarReader) Path() string {
	return t.path
}

func (t *tarReader) Entries() []Entry {
	c := make([]Entry, len(t.entries))
	copy(c, t.entries)
	return c
}

func (t *tarReader) Open(name string) (io.ReadCloser, error) {
	var content []byte
	var readErr error
	found := false
	err := t.each(func(h *tar.Header, r io.Reader) bool {
		if normalizeName(h.Name) != name || h.Typeflag == tar.TypeDir {
			return true
		}
		found = true
		content, readErr = io.ReadAll(r)
		return false
	})
	if err == nil {
		err = readErr
	}
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &os.PathError{Op: `open`, Path: filepath.ToSlash(t.path) + `!/` + name, Err: os.ErrNotExist}
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (t *tarReader) Close() error {
	return nil
}
