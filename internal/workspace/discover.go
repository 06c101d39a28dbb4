// Package workspace enumerates the member directories of a JavaScript
// monorepo, either from workspace manifests (package.json, pnpm,
// lerna) or, failing that, from conventional directory layouts.
package workspace

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/kodelint/next-prune/internal/config"
	"github.com/kodelint/next-prune/internal/pathutil"
)

// Source identifies which strategy produced a WorkspaceDiscoveryResult's
// directory list.
type Source string

const (
	SourceManifest  Source = "manifest"
	SourceHeuristic Source = "heuristic"
	SourceNone      Source = "none"
)

// DiscoveryResult is the outcome of resolving a monorepo's workspace
// members under root.
type DiscoveryResult struct {
	RootRealpath         string
	WorkspaceDirectories []string
	Source               Source
	ManifestPatterns      []string
	HasManifest           bool
}

// Discover resolves the workspace member directories of root under the
// given discovery mode. All filesystem errors along the way are
// absorbed: a manifest or directory that cannot be read simply
// contributes nothing.
func Discover(root string, mode config.WorkspaceDiscoveryMode) DiscoveryResult {
	rootReal, err := filepath.EvalSymlinks(root)
	if err != nil {
		rootReal = root
	}

	patterns, hasManifest := collectManifestPatterns(root)

	var includes, excludes []string
	for _, p := range patterns {
		if pathutil.IsNegatedWorkspacePattern(p) {
			excludes = append(excludes, p)
		} else {
			includes = append(includes, p)
		}
	}

	var candidateDirs []string
	source := SourceNone

	switch mode {
	case config.WorkspaceDiscoveryManifestOnly:
		candidateDirs, source = expandIncludes(root, includes), SourceManifest
		if len(candidateDirs) == 0 {
			source = SourceNone
		}
	case config.WorkspaceDiscoveryHeuristicOnly:
		candidateDirs = heuristicDiscover(root)
		if len(candidateDirs) > 0 {
			source = SourceHeuristic
		}
	default: // manifest-fallback
		candidateDirs = expandIncludes(root, includes)
		if len(candidateDirs) > 0 {
			source = SourceManifest
		} else {
			candidateDirs = heuristicDiscover(root)
			if len(candidateDirs) > 0 {
				source = SourceHeuristic
			}
		}
	}

	candidateDirs = applyExcludes(root, candidateDirs, excludes)
	final := containDedupSort(root, rootReal, candidateDirs)

	return DiscoveryResult{
		RootRealpath:         rootReal,
		WorkspaceDirectories: final,
		Source:               source,
		ManifestPatterns:      patterns,
		HasManifest:           hasManifest,
	}
}

func expandIncludes(root string, includes []string) []string {
	var dirs []string
	for _, pattern := range includes {
		dirs = append(dirs, expandPattern(root, pattern)...)
	}
	return dirs
}

// applyExcludes drops any candidate whose root-relative POSIX path
// matches one of the negated patterns' bodies.
func applyExcludes(root string, dirs []string, excludes []string) []string {
	if len(excludes) == 0 {
		return dirs
	}

	var kept []string
	for _, dir := range dirs {
		rel, err := filepath.Rel(root, dir)
		if err != nil {
			kept = append(kept, dir)
			continue
		}
		rel = filepath.ToSlash(rel)

		excluded := false
		for _, ex := range excludes {
			body := pathutil.TrimNegation(ex)
			if pathutil.MatchesWorkspacePattern(rel, body) {
				excluded = true
				break
			}
		}
		if !excluded {
			kept = append(kept, dir)
		}
	}
	return kept
}

// containDedupSort resolves each candidate's real path, drops anything
// outside rootReal (or equal to it), deduplicates by real path, and
// sorts the survivors lexicographically by their logical directory
// path for deterministic output.
func containDedupSort(root, rootReal string, dirs []string) []string {
	seen := make(map[string]bool)
	var kept []string

	for _, dir := range dirs {
		real, err := filepath.EvalSymlinks(dir)
		if err != nil {
			continue
		}
		if real == rootReal || !strings.HasPrefix(real, rootReal+string(filepath.Separator)) {
			continue
		}
		if seen[real] {
			continue
		}
		seen[real] = true
		kept = append(kept, dir)
	}

	sort.Strings(kept)
	return kept
}
