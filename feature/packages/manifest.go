package packages

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// manifestVersion is the manifest format version this tool writes.
const manifestVersion = 2

// Config holds configuration for package manifest maintenance.
type Config struct {
	// ManifestPath is the persisted package manifest file.
	ManifestPath string `mapstructure:"manifest_path" default:".dart_tool/package_config.json"`
	// Name is this package's own manifest entry name. Empty disables the
	// manifest update after a merge.
	Name string `mapstructure:"name" default:""`
	// Update selects which packages an update run targets. See
	// ParseUpdateTargets for the accepted forms.
	Update string `mapstructure:"update" default:"all"`
}

// Entry is one package record in the manifest.
type Entry struct {
	// Name is the package name, unique within the manifest.
	Name string `json:"name"`
	// RootURI is the package's root path.
	RootURI string `json:"rootUri"`
}

// Manifest is the persisted list of package entries, kept sorted by name.
type Manifest struct {
	Version  int     `json:"configVersion"`
	Packages []Entry `json:"packages"`
}

// Load reads the manifest at path. A missing file yields an empty manifest so
// a fresh checkout bootstraps cleanly.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{Version: manifestVersion}, nil
		}
		return nil, fmt.Errorf("failed to read package manifest %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse package manifest %s: %w", path, err)
	}
	if m.Version == 0 {
		m.Version = manifestVersion
	}
	return &m, nil
}

// Update inserts an entry for the named package, replacing any existing entry
// with the same name, and keeps the list sorted by name.
func (m *Manifest) Update(name, rootPath string) {
	entries := m.Packages[:0]
	for _, e := range m.Packages {
		if e.Name != name {
			entries = append(entries, e)
		}
	}
	m.Packages = append(entries, Entry{Name: name, RootURI: rootPath})
	m.sort()
}

// Lookup returns the entry for the named package.
func (m *Manifest) Lookup(name string) (Entry, bool) {
	for _, e := range m.Packages {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Normalize deduplicates entries by name (the later entry wins) and restores
// sorted order. Used when refreshing a manifest written by other tools.
func (m *Manifest) Normalize() {
	byName := make(map[string]Entry, len(m.Packages))
	for _, e := range m.Packages {
		byName[e.Name] = e
	}
	m.Packages = m.Packages[:0]
	for _, e := range byName {
		m.Packages = append(m.Packages, e)
	}
	m.sort()
}

func (m *Manifest) sort() {
	sort.Slice(m.Packages, func(i, j int) bool {
		return m.Packages[i].Name < m.Packages[j].Name
	})
}

// Save writes the manifest to path with stable formatting, creating parent
// directories as needed.
func (m *Manifest) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize package manifest: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create manifest directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write package manifest %s: %w", path, err)
	}
	return nil
}
