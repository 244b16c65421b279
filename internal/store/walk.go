package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one todo list file found in a context folder.
type Entry struct {
	Path         string
	RelativePath string
	ModTime      time.Time
}

// IsDocument reports whether name looks like a todo list file.
func IsDocument(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".txt"
}

// WalkDocuments calls fn for every .md and .txt file below folder, in
// lexical order. A symlinked folder is resolved first. Symlinked files are
// reported when they point at a regular file or at nothing; symlinked
// directories are not followed. Hidden directories are skipped. Paths are
// reported under folder as given. A missing folder, an unreadable directory,
// or an error from fn stops the walk.
func WalkDocuments(folder string, fn func(Entry) error) error {
	if !isDir(folder) {
		return fmt.Errorf("context folder %s: %w", folder, ErrNotFound)
	}
	root, err := filepath.EvalSymlinks(folder)
	if err != nil {
		return fmt.Errorf("resolve context folder %s: %w", folder, err)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", path, err)
		}

		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !IsDocument(d.Name()) {
			return nil
		}

		var info fs.FileInfo
		switch {
		case d.Type().IsRegular():
			info, err = d.Info()
		case d.Type()&fs.ModeSymlink != 0:
			info, err = os.Stat(path)
			if errors.Is(err, fs.ErrNotExist) {
				// Dangling links are reported; reading them fails.
				info, err = d.Info()
			} else if err == nil && !info.Mode().IsRegular() {
				return nil
			}
		default:
			return nil
		}
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		relativePath, _ := filepath.Rel(root, path)
		return fn(Entry{
			Path:         filepath.Join(folder, relativePath),
			RelativePath: relativePath,
			ModTime:      info.ModTime(),
		})
	})
}
