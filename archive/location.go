package archive

import (
	"fmt"
	"strings"

	"github.com/lyraproj/locator/api"
)

// Location returns the canonical location of the given entry in the archive at the given
// OS path. An empty entry denotes the archive root.
func Location(archivePath, entry string) string {
	return api.ArchivePrefix + api.FileURL(archivePath) + api.ArchiveSeparator + normalizeName(entry)
}

// SplitLocation splits an archive location of the form archive:<url>!/<entry> into the OS
// path of the archive and the entry path. The archive part is parsed as a file: URL and,
// when that fails, by stripping its scheme. A location without separator denotes the
// archive root.
func SplitLocation(location string) (archivePath, entry string, err error) {
	rest := strings.TrimPrefix(location, api.ArchivePrefix)
	urlPart := rest
	if sep := strings.Index(rest, api.ArchiveSeparator); sep >= 0 {
		urlPart = rest[:sep]
		entry = rest[sep+len(api.ArchiveSeparator):]
	}
	if urlPart == `` {
		return ``, ``, fmt.Errorf(`archive location '%s' does not name an archive`, location)
	}
	archivePath, err = api.ParseFileURL(urlPart)
	if err != nil {
		return ``, ``, err
	}
	return archivePath, normalizeName(entry), nil
}
