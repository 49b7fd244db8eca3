// Package packages maintains the build system's persisted package manifest.
//
// The manifest is a JSON list of package entries (name + root URI) that the
// build's package resolver consumes. Update replaces any existing entry with
// the same name and keeps the list sorted by name, so rewrites are
// deterministic and diff-friendly.
//
// Which packages an update run touches is configured as an explicit
// tagged-variant UpdateTargets value ("all", named packages, or named
// packages with custom root paths) rather than ad hoc optional-key probing.
package packages
