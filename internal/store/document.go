package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mdtodo/todo/internal/atomicfile"
)

// ReadDocument returns the whole text of the todo list at path.
func ReadDocument(path string) (string, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(content), nil
}

// WriteDocument stores text at path atomically. Unless overwrite is set an
// existing file is left alone and ErrExists is returned.
func WriteDocument(path, text string, overwrite bool) error {
	if !overwrite && isFile(path) {
		return fmt.Errorf("%s: %w", path, ErrExists)
	}
	return atomicfile.WriteFile(path, []byte(text), 0)
}

// Move renames a todo list, possibly into another context folder. The
// destination folder must exist.
func Move(oldPath, newPath string) error {
	if !isFile(oldPath) {
		return fmt.Errorf("nothing to move at %s: %w", oldPath, ErrNotFound)
	}
	if isFile(newPath) {
		return fmt.Errorf("%s: %w", newPath, ErrExists)
	}
	if !isDir(filepath.Dir(newPath)) {
		return fmt.Errorf("folder %s: %w", filepath.Dir(newPath), ErrNotFound)
	}

	if err := os.Rename(oldPath, newPath); err == nil {
		return nil
	}

	// Rename fails across filesystems; copy then remove instead.
	content, err := os.ReadFile(oldPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", oldPath, err)
	}
	if err := atomicfile.WriteFile(newPath, content, 0); err != nil {
		return fmt.Errorf("move %s to %s: %w", oldPath, newPath, err)
	}
	if err := os.Remove(oldPath); err != nil {
		return fmt.Errorf("remove %s after copy: %w", oldPath, err)
	}
	return nil
}

// Remove deletes the todo list at path.
func Remove(path string) error {
	if !isFile(path) {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}
