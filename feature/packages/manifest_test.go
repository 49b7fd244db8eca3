package packages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "package_config.json"))
	require.NoError(t, err)
	assert.Empty(t, m.Packages)
	assert.Equal(t, manifestVersion, m.Version)
}

func TestLoad_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package_config.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestManifest_Update(t *testing.T) {
	m := &Manifest{Version: manifestVersion}

	m.Update("zeta", "../zeta")
	m.Update("alpha", "../alpha")
	m.Update("mid", "../mid")

	assert.Equal(t, []Entry{
		{Name: "alpha", RootURI: "../alpha"},
		{Name: "mid", RootURI: "../mid"},
		{Name: "zeta", RootURI: "../zeta"},
	}, m.Packages)

	// Same name replaces the existing entry instead of duplicating it.
	m.Update("mid", "../elsewhere")
	assert.Len(t, m.Packages, 3)
	entry, ok := m.Lookup("mid")
	require.True(t, ok)
	assert.Equal(t, "../elsewhere", entry.RootURI)
}

func TestManifest_Normalize(t *testing.T) {
	m := &Manifest{
		Version: manifestVersion,
		Packages: []Entry{
			{Name: "b", RootURI: "old"},
			{Name: "a", RootURI: "../a"},
			{Name: "b", RootURI: "new"},
		},
	}

	m.Normalize()

	assert.Equal(t, []Entry{
		{Name: "a", RootURI: "../a"},
		{Name: "b", RootURI: "new"},
	}, m.Packages)
}

func TestManifest_SaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "package_config.json")

	m := &Manifest{Version: manifestVersion}
	m.Update("app", ".")
	m.Update("shared", "../shared")
	require.NoError(t, m.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, m, loaded)

	// Identical content on rewrite keeps manifest diffs clean.
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, loaded.Save(path))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}
