package resource

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lyraproj/locator/api"
	"github.com/lyraproj/locator/archive"
)

type archiveEntry struct {
	archivePath string
	entry       string
	cache       *archive.Cache
}

// NewArchive returns a resource for the given entry of the archive at the given OS path. An
// empty entry denotes the archive root. When a cache is given, the archive connection is
// obtained from it and left open.
func NewArchive(archivePath, entry string, cache *archive.Cache) api.ArchiveResource {
	return &archiveEntry{archivePath: archivePath, entry: strings.TrimLeft(entry, `/`), cache: cache}
}

// ParseArchive returns a resource for the given archive location, see archive.SplitLocation.
func ParseArchive(location string, cache *archive.Cache) (api.ArchiveResource, error) {
	p, e, err := archive.SplitLocation(location)
	if err != nil {
		return nil, err
	}
	return NewArchive(p, e, cache), nil
}

func (a *archiveEntry) Location() string {
	return archive.Location(a.archivePath, a.entry)
}

func (a *archiveEntry) Kind() api.Kind {
	return api.KindArchive
}

func (a *archiveEntry) ArchivePath() string {
	return a.archivePath
}

func (a *archiveEntry) EntryPath() string {
	return a.entry
}

func (a *archiveEntry) Cache() *archive.Cache {
	return a.cache
}

// reader returns a reader for the archive and a function that releases it
func (a *archiveEntry) reader() (archive.Reader, func(), error) {
	if a.cache != nil {
		r, err := a.cache.Get(a.archivePath)
		return r, func() {}, err
	}
	r, err := archive.Open(a.archivePath)
	if err != nil {
		return nil, nil, err
	}
	return r, func() { _ = r.Close() }, nil
}

// Exists returns true if the archive exists and, unless this is the archive root, contains the
// entry. A directory entry exists when the archive holds any entry below it.
func (a *archiveEntry) Exists() bool {
	fi, err := os.Stat(a.archivePath)
	if err != nil || fi.IsDir() {
		return false
	}
	if a.entry == `` {
		return true
	}
	r, release, err := a.reader()
	if err != nil {
		return false
	}
	defer release()

	dir := a.entry
	if !strings.HasSuffix(dir, `/`) {
		dir += `/`
	}
	for _, e := range r.Entries() {
		if e.Name == a.entry || strings.HasPrefix(e.Name, dir) {
			return true
		}
	}
	return false
}

// Open returns the content of the entry. The archive root is opened as the archive file.
func (a *archiveEntry) Open() (io.ReadCloser, error) {
	if a.entry == `` {
		return os.Open(a.archivePath)
	}
	r, release, err := a.reader()
	if err != nil {
		return nil, err
	}
	rc, err := r.Open(a.entry)
	if err != nil {
		release()
		return nil, err
	}
	return &releasingReader{ReadCloser: rc, release: release}, nil
}

func (a *archiveEntry) CreateRelative(relativePath string) (api.Resource, error) {
	return NewArchive(a.archivePath, applyRelativePath(a.entry, relativePath), a.cache), nil
}

func (a *archiveEntry) String() string {
	return fmt.Sprintf(`archive{path:%s, entry:%s}`, a.archivePath, a.entry)
}

// releasingReader releases the archive when the entry stream is closed
type releasingReader struct {
	io.ReadCloser
	release func()
}

func (r *releasingReader) Close() error {
	err := r.ReadCloser.Close()
	r.release()
	return err
}
