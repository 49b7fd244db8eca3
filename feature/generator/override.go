package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// arbDirKey is the tool-configuration entry naming the generator's input
// directory.
const arbDirKey = "arb-dir"

// OverrideArbDir rewrites the arb-dir entry of the YAML tool configuration at
// path to dir, runs fn, and restores the original file contents on every exit
// path, including when fn fails. A build must never leave the tool
// configuration pointing at the ephemeral merge output.
func OverrideArbDir(path, dir string, fn func() error) (err error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read generator config %s: %w", path, err)
	}

	var doc map[string]any
	if err = yaml.Unmarshal(original, &doc); err != nil {
		return fmt.Errorf("failed to parse generator config %s: %w", path, err)
	}
	if doc == nil {
		doc = make(map[string]any)
	}
	doc[arbDirKey] = dir

	patched, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize generator config override: %w", err)
	}
	if err = os.WriteFile(path, patched, 0644); err != nil {
		return fmt.Errorf("failed to apply arb-dir override to %s: %w", path, err)
	}

	defer func() {
		if restoreErr := os.WriteFile(path, original, 0644); restoreErr != nil && err == nil {
			err = fmt.Errorf("failed to restore generator config %s: %w", path, restoreErr)
		}
	}()

	return fn()
}
