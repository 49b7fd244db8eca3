package translations

import "path/filepath"

// Config holds configuration for the translation merge step.
type Config struct {
	// Path is the directory containing this app's resource files. They act
	// as the extension layer when a base app is configured. Required.
	Path string `mapstructure:"path" default:""`
	// BaseApp names a sibling project whose resource files act as the base
	// layer. Empty means this app has no base.
	BaseApp string `mapstructure:"base_app" default:""`
	// BasePath overrides the base app's resource directory. When empty it is
	// derived from BaseApp as a sibling checkout with the same layout.
	BasePath string `mapstructure:"base_path" default:""`
	// OutputDir is where merged resource files are written. The directory is
	// ephemeral: created fresh and consumed by the code generator.
	OutputDir string `mapstructure:"output_dir" default:".dart_tool/flutter_gen_builder/arb"`
	// OverrideArbDir redirects the code generator's input directory to
	// OutputDir for the duration of its invocation.
	OverrideArbDir bool `mapstructure:"override_arb_dir" default:"false"`
}

// ResolvedBasePath returns the base app's resource directory, deriving the
// sibling-checkout default when no explicit override is configured. Empty
// when no base app is configured.
func (c *Config) ResolvedBasePath() string {
	if c.BaseApp == "" {
		return ""
	}
	if c.BasePath != "" {
		return c.BasePath
	}
	return filepath.Join("..", c.BaseApp, c.Path)
}
