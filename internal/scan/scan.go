package scan

import (
	"context"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/kodelint/next-prune/internal/config"
	"github.com/kodelint/next-prune/internal/workspace"
)

// Scan walks root (and, depending on opts, its monorepo workspace
// members) and returns every discovered cleanup candidate with
// recursive stats computed, sorted by size descending then path
// ascending.
func Scan(root string, opts Options) []ScanItem {
	rootReal, err := filepath.EvalSymlinks(root)
	if err != nil {
		rootReal = root
	}

	roots, workspaceReal := buildScanRoots(root, rootReal, opts)

	disc := newDiscovered()
	userSkips := make(map[string]bool, len(opts.SkipDirs))
	for _, s := range opts.SkipDirs {
		userSkips[s] = true
	}

	g, ctx := errgroup.WithContext(context.Background())
	for _, r := range roots {
		r := r
		g.Go(func() error {
			w := &walker{opts: opts, userSkips: userSkips, disc: disc, workspaceReal: workspaceReal}
			w.walkDir(ctx, r, r.logicalRoot, 0)
			return nil
		})
	}
	_ = g.Wait()

	items := disc.items()
	computeStatsParallel(items)
	sortItems(items)
	return items
}

// buildScanRoots implements the scan-root construction rules: the
// project root itself when "project" is an active scope, plus each
// workspace member directory (scope=workspace) when "workspace" is
// active and monorepoMode hasn't been turned off.
func buildScanRoots(root, rootReal string, opts Options) ([]scanRootJob, map[string]bool) {
	var roots []scanRootJob
	workspaceReal := make(map[string]bool)

	if opts.hasScope(config.ScopeWorkspace) && opts.MonorepoMode != config.MonorepoOff {
		result := workspace.Discover(root, opts.WorkspaceDiscoveryMode)
		for _, dir := range result.WorkspaceDirectories {
			real, err := filepath.EvalSymlinks(dir)
			if err != nil {
				continue
			}
			workspaceReal[real] = true
			roots = append(roots, scanRootJob{logicalRoot: dir, realRoot: real, scope: config.ScopeWorkspace})
		}
	}

	if opts.hasScope(config.ScopeProject) {
		roots = append([]scanRootJob{{logicalRoot: root, realRoot: rootReal, scope: config.ScopeProject}}, roots...)
	}

	return roots, workspaceReal
}

func sortItems(items []ScanItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Stats.Size != items[j].Stats.Size {
			return items[i].Stats.Size > items[j].Stats.Size
		}
		return items[i].Path < items[j].Path
	})
}
