// Package policy applies always-delete/never-delete patterns to a
// scanned candidate set and flags the families that require explicit
// opt-in before non-interactive deletion.
package policy

import (
	"path/filepath"

	"github.com/kodelint/next-prune/internal/classify"
	"github.com/kodelint/next-prune/internal/pathutil"
	"github.com/kodelint/next-prune/internal/scan"
)

// FilterNeverDelete drops any item whose path, relative to cwd,
// matches one of the normalized never-delete patterns. An empty
// pattern list is the identity function.
func FilterNeverDelete(items []scan.ScanItem, cwd string, patterns []string) []scan.ScanItem {
	if len(patterns) == 0 {
		return items
	}

	kept := make([]scan.ScanItem, 0, len(items))
	for _, item := range items {
		if matchesAny(item.Path, cwd, patterns) {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// SelectAlwaysDeletePaths returns the set of absolute paths (as a
// lookup set) among items whose path, relative to cwd, matches one of
// the normalized always-delete patterns.
func SelectAlwaysDeletePaths(items []scan.ScanItem, cwd string, patterns []string) map[string]bool {
	selected := make(map[string]bool)
	if len(patterns) == 0 {
		return selected
	}
	for _, item := range items {
		if matchesAny(item.Path, cwd, patterns) {
			selected[item.Path] = true
		}
	}
	return selected
}

func matchesAny(path, cwd string, patterns []string) bool {
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, p := range patterns {
		if pathutil.MatchesConfigPattern(rel, p) {
			return true
		}
	}
	return false
}

// applyProtectedTypes are the CandidateTypes that require an explicit
// opt-in before a non-interactive deletion run is allowed to touch
// them.
var applyProtectedTypes = map[classify.CandidateType]bool{
	classify.CandidateNodeModules: true,
	classify.CandidatePmCache:     true,
}

// IsApplyProtected reports whether candidateType requires the
// --apply-equivalent opt-in for non-interactive deletion.
func IsApplyProtected(candidateType classify.CandidateType) bool {
	return applyProtectedTypes[candidateType]
}

// AnyApplyProtected reports whether any item in the selection is
// apply-protected.
func AnyApplyProtected(items []scan.ScanItem) bool {
	for _, item := range items {
		if IsApplyProtected(classify.Classify(item)) {
			return true
		}
	}
	return false
}
