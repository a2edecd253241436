// Copyright 2026 The Fieldline Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build metadata for the fieldline binary.
package version

import (
	"runtime/debug"
	"strings"
)

// Full returns a human-readable version string assembled from the
// module build info: the module version when built from a tagged
// release, otherwise the VCS revision (shortened) with a "-dirty"
// suffix for modified trees. Falls back to "devel" when no build info
// is embedded.
func Full() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "devel"
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision == "" {
		return "devel"
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	var b strings.Builder
	b.WriteString("devel+")
	b.WriteString(revision)
	if dirty {
		b.WriteString("-dirty")
	}
	return b.String()
}
