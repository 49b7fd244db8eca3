package translations

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// outputPrefix replaces an extension file's project prefix on output
	// filenames and names purely synthesized outputs.
	outputPrefix = "base"
	// outputExtension names outputs when no source file provides a filename.
	outputExtension = ".arb"
	// outputIndent keeps serialized documents human-diffable.
	outputIndent = "  "
)

// OutputName selects the filename for a locale's output. A base file's name
// is reused verbatim; an extension-only file has its leading project prefix
// replaced ("app2_en.arb" becomes "base_en.arb"); with no source file at all
// the name is synthesized from the locale.
func OutputName(baseFile, extensionFile, locale string) string {
	if baseFile != "" {
		return filepath.Base(baseFile)
	}
	if extensionFile != "" {
		name := filepath.Base(extensionFile)
		if i := strings.Index(name, "_"); i >= 0 {
			return outputPrefix + name[i:]
		}
		return name
	}
	return outputPrefix + "_" + locale + outputExtension
}

// WriteDocument serializes doc with stable key ordering and writes it under
// dir as name. The write is a whole-file overwrite.
func WriteDocument(doc *Document, dir, name string) (string, error) {
	data, err := doc.MarshalIndent(outputIndent)
	if err != nil {
		return "", fmt.Errorf("failed to serialize document %s: %w", name, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// CopyResource copies the source file src byte-for-byte under dir as name.
// Used in pure-copy mode, where the source is relocated without merging.
func CopyResource(src, dir, name string) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("failed to read resource file %s: %w", src, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
