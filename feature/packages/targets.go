package packages

import (
	"fmt"
	"strings"
)

// UpdateMode selects which packages an update run targets.
type UpdateMode string

const (
	// UpdateAll targets every entry already present in the manifest.
	UpdateAll UpdateMode = "all"
	// UpdateNamed targets only the named packages, keeping their recorded
	// root paths.
	UpdateNamed UpdateMode = "named"
	// UpdatePaths targets the named packages with explicit root paths.
	UpdatePaths UpdateMode = "paths"
)

// UpdateTargets is the parsed update-targeting configuration. Exactly one
// variant is active, selected by Mode.
type UpdateTargets struct {
	Mode UpdateMode
	// Names is set for UpdateNamed.
	Names []string
	// Paths maps package name to root path for UpdatePaths.
	Paths map[string]string
}

// ParseUpdateTargets interprets the update-targeting configuration value.
// Accepted forms:
//
//	""            -> update all
//	"all"         -> update all
//	"app,shared"  -> update the named packages
//	"app=.,shared=../shared" -> update the named packages with custom paths
//
// Mixing named and name=path items in one value is rejected.
func ParseUpdateTargets(raw string) (*UpdateTargets, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == string(UpdateAll) {
		return &UpdateTargets{Mode: UpdateAll}, nil
	}

	var names []string
	paths := make(map[string]string)
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if name, path, ok := strings.Cut(item, "="); ok {
			name, path = strings.TrimSpace(name), strings.TrimSpace(path)
			if name == "" || path == "" {
				return nil, fmt.Errorf("invalid update target %q", item)
			}
			paths[name] = path
			continue
		}
		names = append(names, item)
	}

	switch {
	case len(names) > 0 && len(paths) > 0:
		return nil, fmt.Errorf("update targets %q mix named and name=path forms", raw)
	case len(paths) > 0:
		return &UpdateTargets{Mode: UpdatePaths, Paths: paths}, nil
	case len(names) > 0:
		return &UpdateTargets{Mode: UpdateNamed, Names: names}, nil
	default:
		return nil, fmt.Errorf("empty update targets %q", raw)
	}
}
