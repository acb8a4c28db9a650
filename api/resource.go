package api

import (
	"io"
)

// Kind describes the backing store of a Resource.
type Kind string

// KindFile indicates that the resource is a file or directory in the file system
const KindFile = Kind(`file`)

// KindArchive indicates that the resource is an archive or an entry within an archive
const KindArchive = Kind(`archive`)

// KindProvider indicates that the resource is a literal name that no backing store could satisfy
const KindProvider = Kind(`provider`)

// KindVirtual indicates that the resource is a node in a virtual file system
const KindVirtual = Kind(`virtual`)

const (
	// FilePrefix is the location prefix of resources in the file system
	FilePrefix = `file:`

	// ArchivePrefix is the location prefix of archive resources
	ArchivePrefix = `archive:`

	// ArchiveSeparator separates the archive path from the entry path in an archive location
	ArchiveSeparator = `!/`

	// ProviderPrefix is the location prefix of literal names resolved by the primary provider
	ProviderPrefix = `classpath:`

	// MultiProviderPrefix is the location prefix that makes a lookup search all visible providers
	MultiProviderPrefix = `classpath-all:`

	// VirtualPrefix is the location prefix of resources in a virtual file system
	VirtualPrefix = `vfs:`
)

// Resource is a handle to a located resource. Its identity is the canonical location string
// returned by Location. A Resource is never mutated once created.
type Resource interface {
	// Location returns the canonical location of the resource. Two resources are equal
	// if and only if their locations are equal.
	Location() string

	// Kind returns the kind of backing store that holds the resource
	Kind() Kind

	// Exists checks whether the resource exists. The check is performed on every call.
	Exists() bool

	// Open returns a stream that reads the content of the resource.
	Open() (io.ReadCloser, error)

	// CreateRelative returns a resource of the same kind for the given path relative to
	// this resource.
	CreateRelative(relativePath string) (Resource, error)

	String() string
}

// ArchiveResource is a Resource that denotes an archive, or an entry within an archive.
type ArchiveResource interface {
	Resource

	// ArchivePath returns the absolute file system path of the archive
	ArchivePath() string

	// EntryPath returns the path of the denoted entry within the archive, or the empty
	// string when the resource denotes the archive root.
	EntryPath() string
}

// FileResource is a Resource that denotes a file or directory in the file system.
type FileResource interface {
	Resource

	// Path returns the absolute OS path of the file
	Path() string
}
