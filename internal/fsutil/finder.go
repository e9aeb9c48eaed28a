// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ListUnitNames returns the unit names visible directly inside the given
// locations: files carrying one of the extensions (without it) and
// directories. Missing locations are skipped. The result is sorted and unique.
func ListUnitNames(locations []string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		panic("extensions must not be empty")
	}

	seen := make(map[string]struct{})
	for _, location := range locations {
		entries, err := os.ReadDir(location)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		for _, entry := range entries {
			if name, ok := unitNameOf(entry, extensions); ok {
				seen[name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func unitNameOf(entry fs.DirEntry, extensions []string) (string, bool) {
	name := entry.Name()
	if strings.HasPrefix(name, ".") {
		return "", false
	}
	if entry.IsDir() {
		return name, true
	}
	ext := filepath.Ext(name)
	for _, want := range extensions {
		if ext == want {
			return strings.TrimSuffix(name, ext), true
		}
	}
	return "", false
}
