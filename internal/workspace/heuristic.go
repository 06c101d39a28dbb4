package workspace

import (
	"os"
	"path/filepath"
)

// heuristicParents are the conventional monorepo member directories
// probed before falling back to scanning the root itself.
var heuristicParents = []string{"apps", "packages", "services", "libs"}

// heuristicDiscover inspects the conventional parent directories for
// package.json-bearing children; if none of those parents exist (or
// none of their children qualify), it falls back to scanning root's
// own top-level subdirectories with the same rule. The fallback keeps
// flat, single-level monorepos discoverable without a manifest.
func heuristicDiscover(root string) []string {
	var results []string
	for _, parent := range heuristicParents {
		parentDir := filepath.Join(root, parent)
		info, err := os.Stat(parentDir)
		if err != nil || !info.IsDir() {
			continue
		}
		results = append(results, scanHeuristicChildren(parentDir)...)
	}

	if len(results) == 0 {
		results = append(results, scanHeuristicChildren(root)...)
	}
	return results
}

func scanHeuristicChildren(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var results []string
	for _, e := range entries {
		if !e.IsDir() || isSkipDir(e.Name()) {
			continue
		}
		child := filepath.Join(dir, e.Name())
		if hasPackageJSON(child) {
			results = append(results, child)
		}
	}
	return results
}
