package crawl

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LogName is the only filename the locator emits.
const LogName = "isce.log"

// FilesystemError wraps a path that could not be read during the walk.
type FilesystemError struct {
	Path string
	Err  error
}

func (e FilesystemError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e FilesystemError) Unwrap() error {
	return e.Err
}

// Walk descends root depth-first and calls fn with the path of every file
// named isce.log. At each level files are emitted before subdirectories are
// entered, and both are visited in lexicographic order, so the sequence is
// reproducible on an unchanged tree. Symlinks are followed for files and
// directories alike. fn returning an error stops the walk.
func Walk(root string, fn func(path string) error) error {
	info, err := os.Stat(root)
	if err != nil {
		return FilesystemError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return FilesystemError{Path: root, Err: fmt.Errorf("not a directory")}
	}
	return walkDir(root, fn)
}

func walkDir(dir string, fn func(path string) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return FilesystemError{Path: dir, Err: err}
	}
	var files, dirs []string
	for _, e := range entries {
		name := e.Name()
		// Stat, not the entry type, so symlinked directories descend like
		// real ones. A broken symlink counts as a file; if it is named
		// isce.log the read failure is isolated at the per-file boundary.
		info, statErr := os.Stat(filepath.Join(dir, name))
		if statErr == nil && info.IsDir() {
			dirs = append(dirs, name)
		} else {
			files = append(files, name)
		}
	}
	sort.Strings(files)
	sort.Strings(dirs)
	for _, name := range files {
		if name == LogName {
			if err := fn(filepath.Join(dir, name)); err != nil {
				return err
			}
		}
	}
	for _, name := range dirs {
		if err := walkDir(filepath.Join(dir, name), fn); err != nil {
			return err
		}
	}
	return nil
}
