package api

import "fmt"

// ResolutionIOError is returned when an I/O failure cannot be recovered by skipping the
// root that caused it, such as failing to open an archive. It aborts the current
// resolution only.
type ResolutionIOError struct {
	Location string
	Cause    error
}

// NewResolutionIOError creates a new ResolutionIOError for the given location and cause
func NewResolutionIOError(location string, cause error) *ResolutionIOError {
	return &ResolutionIOError{Location: location, Cause: cause}
}

func (e *ResolutionIOError) Error() string {
	return fmt.Sprintf(`unable to resolve resources in '%s': %s`, e.Location, e.Cause)
}

func (e *ResolutionIOError) Unwrap() error {
	return e.Cause
}
