package translations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestIndexByLocale(t *testing.T) {
	dir := t.TempDir()
	enPath := writeFile(t, dir, "app_en.arb", `{}`)
	dePath := writeFile(t, dir, "app_de_DE.arb", `{}`)
	writeFile(t, dir, "README.md", "unrelated")
	writeFile(t, dir, "my_app_fr.arb", `{}`) // prefix with underscore, excluded
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub_en.arb"), 0755))

	index, err := IndexByLocale(dir)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"en":    enPath,
		"de_DE": dePath,
	}, index)
}

func TestIndexByLocale_DuplicateLocale(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app_en.arb", `{}`)
	lastPath := writeFile(t, dir, "zapp_en.arb", `{}`)

	index, err := IndexByLocale(dir)
	require.NoError(t, err)

	// Lexicographically later filename wins, deterministically.
	assert.Equal(t, lastPath, index["en"])
}

func TestIndexByLocale_MissingDirectory(t *testing.T) {
	index, err := IndexByLocale(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, index)
}
