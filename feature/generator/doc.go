// Package generator drives the external localization code generator.
//
// The generator is an external toolchain command (e.g. "flutter gen-l10n")
// invoked as a subprocess after the translation merge. Its failures are
// degraded-but-not-fatal: the build proceeds with whatever generated output
// already exists.
//
// OverrideArbDir scopes the redirection of the generator's input directory:
// it rewrites the arb-dir entry of the tool configuration (l10n.yaml), runs
// the given function and restores the original file on every exit path.
package generator
