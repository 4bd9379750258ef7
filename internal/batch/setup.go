package batch

import (
	"fmt"
	"os"
)

const dirPermissions = 0755

// SetupError reports that the output directory could not be prepared.
type SetupError struct {
	Dir string
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("failed to create output directory %s: %v", e.Dir, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// EnsureOutputDir creates dir and any missing parents. Existing directories
// and their contents are left alone.
func EnsureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return &SetupError{Dir: dir, Err: err}
	}
	return nil
}
