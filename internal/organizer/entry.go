package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileEntry is an immutable snapshot of one file taken at scan time. It can
// go stale if the filesystem changes mid-run; the executor surfaces that as
// a Failed result rather than guarding against it.
type FileEntry struct {
	// Name is the base name including extension.
	Name string
	// Ext is the lower-cased extension with leading dot, "" when absent.
	Ext string
	// Path is the absolute location at scan time.
	Path string
	// Dir is the absolute parent directory.
	Dir string
}

// junkFiles are OS metadata files never offered for organization.
// Dot-prefixed names (.DS_Store, .localized) are already excluded by the
// hidden-file rule.
var junkFiles = map[string]struct{}{
	"Thumbs.db":   {},
	"desktop.ini": {},
}

// Scan returns the immediate regular files of dir sorted by name.
// Subdirectories (including existing category folders), hidden files, and
// OS junk files are excluded.
func Scan(dir string) ([]FileEntry, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve source directory: %w", err)
	}

	dirEntries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read source directory: %w", err)
	}

	// os.ReadDir sorts by filename, which keeps processing order and test
	// expectations deterministic.
	entries := make([]FileEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if _, junk := junkFiles[name]; junk {
			continue
		}
		entries = append(entries, FileEntry{
			Name: name,
			Ext:  strings.ToLower(filepath.Ext(name)),
			Path: filepath.Join(abs, name),
			Dir:  abs,
		})
	}
	return entries, nil
}
