package loader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DisplayName shortens path relative to baseDir for progress output. Paths
// outside baseDir are kept as given.
func DisplayName(path, baseDir string) string {
	if path == "" || path == "-" {
		return path
	}
	out := filepath.Clean(path)
	base := strings.TrimSpace(baseDir)
	if base != "" {
		if abs, err := filepath.Abs(base); err == nil {
			base = abs
		}
		if abs, err := filepath.Abs(out); err == nil {
			if rel, err := filepath.Rel(base, abs); err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
				out = rel
			}
		}
	}
	return filepath.ToSlash(out)
}

// DisplayNames maps every path to its display name, keeping names unique.
func DisplayNames(paths []string, baseDir string) []string {
	names := make([]string, len(paths))
	seen := make(map[string]int, len(paths))
	for i, path := range paths {
		name := DisplayName(path, baseDir)
		if n := seen[name]; n > 0 {
			seen[name] = n + 1
			name = fmt.Sprintf("%s#%d", name, n+1)
		} else {
			seen[name] = 1
		}
		names[i] = name
	}
	return names
}
