package store

import (
	"errors"
	"fmt"
	"os"
)

// ErrDeclined is returned when the user refuses to create a missing folder.
var ErrDeclined = errors.New("folder creation declined")

// EnsureFolder makes sure folder exists. When it does not, confirm is asked
// first; a nil confirm creates it without asking. The boolean reports whether
// the folder was created.
func EnsureFolder(folder string, confirm func(folder string) bool) (bool, error) {
	if isDir(folder) {
		return false, nil
	}
	if _, err := os.Stat(folder); err == nil {
		return false, fmt.Errorf("%s exists and is not a folder", folder)
	}

	if confirm != nil && !confirm(folder) {
		return false, fmt.Errorf("%s: %w", folder, ErrDeclined)
	}
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return false, fmt.Errorf("create folder %s: %w", folder, err)
	}
	return true, nil
}
