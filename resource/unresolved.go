package resource

import (
	"fmt"
	"io"
	"os"

	"github.com/lyraproj/locator/api"
)

type unresolved string

// NewUnresolved returns a resource of KindProvider for a location that no backing store could
// satisfy. The resource never exists.
func NewUnresolved(location string) api.Resource {
	return unresolved(location)
}

// NewLiteral returns an unresolved resource for a literal name of the primary provider
func NewLiteral(name string) api.Resource {
	return unresolved(api.ProviderPrefix + name)
}

func (u unresolved) Location() string {
	return string(u)
}

func (u unresolved) Kind() api.Kind {
	return api.KindProvider
}

func (u unresolved) Exists() bool {
	return false
}

func (u unresolved) Open() (io.ReadCloser, error) {
	return nil, &os.PathError{Op: `open`, Path: string(u), Err: os.ErrNotExist}
}

func (u unresolved) CreateRelative(relativePath string) (api.Resource, error) {
	return unresolved(applyRelativePath(string(u), relativePath)), nil
}

func (u unresolved) String() string {
	return fmt.Sprintf(`unresolved{location:%s}`, string(u))
}
