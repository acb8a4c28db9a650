package archive

import (
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/locator/api"
	"github.com/lyraproj/locator/matcher"
)

// Cached is implemented by resources that carry a cache of open archive connections.
type Cached interface {
	Cache() *Cache
}

// Scanner finds the entries of an archive that match a pattern
type Scanner struct {
	matcher *matcher.Matcher
	logger  hclog.Logger
}

// NewScanner creates a Scanner that uses the given matcher. A nil logger means
// hclog.Default().
func NewScanner(m *matcher.Matcher, logger hclog.Logger) *Scanner {
	if m == nil {
		m = matcher.Default
	}
	if logger == nil {
		logger = hclog.Default()
	}
	return &Scanner{matcher: m, logger: logger.Named(`archive`)}
}

// Scan returns a resource for every entry below the given root that matches the sub pattern.
// The root must denote an archive or an entry within an archive. The archive is closed before
// Scan returns unless it was obtained from a Cache.
func (s *Scanner) Scan(root api.Resource, subPattern string) (*api.ResultSet, error) {
	archivePath, rootEntryPath, err := s.split(root)
	if err != nil {
		return nil, api.NewResolutionIOError(root.Location(), err)
	}

	var reader Reader
	if c, ok := root.(Cached); ok && c.Cache() != nil {
		reader, err = c.Cache().Get(archivePath)
		if err != nil {
			return nil, api.NewResolutionIOError(root.Location(), err)
		}
	} else {
		reader, err = Open(archivePath)
		if err != nil {
			return nil, api.NewResolutionIOError(root.Location(), err)
		}
		defer func() {
			if err := reader.Close(); err != nil {
				s.logger.Debug(`unable to close archive`, `path`, archivePath, `error`, err)
			}
		}()
	}

	s.logger.Trace(`looking for matching resources in archive`, `path`, archivePath, `pattern`, subPattern)
	// Entries are created relative to the root. A root that does not end with '/' has its last
	// segment replaced, so that segment is prepended to every relative path.
	relativePrefix := ``
	if rootEntryPath != `` && !strings.HasSuffix(rootEntryPath, `/`) {
		relativePrefix = rootEntryPath[strings.LastIndex(rootEntryPath, `/`)+1:] + `/`
		rootEntryPath += `/`
	}

	result := api.NewResultSet(8)
	for _, entry := range reader.Entries() {
		if !strings.HasPrefix(entry.Name, rootEntryPath) {
			continue
		}
		relativePath := entry.Name[len(rootEntryPath):]
		if s.matcher.Match(subPattern, relativePath) {
			r, err := root.CreateRelative(relativePrefix + relativePath)
			if err != nil {
				return nil, api.NewResolutionIOError(root.Location(), err)
			}
			result.Add(r)
		}
	}
	return result, nil
}

func (s *Scanner) split(root api.Resource) (string, string, error) {
	if ar, ok := root.(api.ArchiveResource); ok {
		return ar.ArchivePath(), ar.EntryPath(), nil
	}
	return SplitLocation(root.Location())
}
