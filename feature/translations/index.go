package translations

import (
	"fmt"
	"os"
	"path/filepath"
)

// IndexByLocale scans a single directory (non-recursive) and records
// locale -> path for every filename the naming grammar recognizes.
//
// Entries are visited in lexicographic filename order, so when two files map
// to the same locale the lexicographically later one wins deterministically
// on every platform. A missing directory yields an empty index, not an
// error: an absent source tree simply contributes nothing.
func IndexByLocale(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to scan resource directory %s: %w", dir, err)
	}

	index := make(map[string]string)
	// os.ReadDir returns entries sorted by filename.
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		locale, ok := ExtractLocale(entry.Name())
		if !ok {
			continue
		}
		index[locale] = filepath.Join(dir, entry.Name())
	}
	return index, nil
}
