package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kodelint/next-prune/internal/config"
)

// scanRootJob is one root the traversal fans out from: either the
// project root itself, or a discovered workspace member directory.
type scanRootJob struct {
	logicalRoot string
	realRoot    string
	scope       config.CleanupScope
}

// walker holds the state shared across every goroutine traversing a
// single Scan call's roots: the shared discovered-candidates map, the
// merged skip-name set, and the real paths of all discovered workspace
// roots (used to avoid double-counting a workspace member while
// walking its enclosing project root).
type walker struct {
	opts          Options
	userSkips     map[string]bool
	disc          *discovered
	workspaceReal map[string]bool
}

// walkDir processes one directory of one scan root: it checks for
// project-local package-manager caches (depth 0 only), extracts a
// Next.js distDir override if a config file is present, then fans out
// over child directories in parallel, joining before this call
// returns (structured fork-join per directory).
func (w *walker) walkDir(ctx context.Context, r scanRootJob, dir string, depth int) {
	if depth == 0 {
		w.emitProjectLocalPmCaches(r, dir)
	}

	if distDir, ok := findNextConfigDistDir(dir); ok {
		w.tryEmit(r, distDir, CleanupTypeArtifact)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, e := range entries {
		e := e
		if !e.IsDir() {
			continue
		}
		childLogical := filepath.Join(dir, e.Name())
		name := e.Name()
		g.Go(func() error {
			w.processEntry(gctx, r, childLogical, name, depth)
			return nil
		})
	}
	_ = g.Wait()
}

func (w *walker) processEntry(ctx context.Context, r scanRootJob, childLogical, name string, depth int) {
	switch {
	case isArtifactName(name):
		w.tryEmit(r, childLogical, CleanupTypeArtifact)
		return

	case name == "node_modules":
		if w.opts.IncludeNodeModules {
			cleanupType := CleanupTypeArtifact
			if r.scope == config.ScopeWorkspace {
				cleanupType = CleanupTypeWorkspaceNodeModules
			}
			w.tryEmit(r, childLogical, cleanupType)
		}
		return

	case name == ".vercel":
		outputDir := filepath.Join(childLogical, "output")
		if info, err := os.Stat(outputDir); err == nil && info.IsDir() {
			w.tryEmit(r, outputDir, CleanupTypeArtifact)
		}
		return

	case isDefaultSkipName(name, w.userSkips):
		return
	}

	if w.opts.MaxDepth != nil && depth >= *w.opts.MaxDepth {
		return
	}

	if r.scope == config.ScopeProject && len(w.workspaceReal) > 0 {
		if real, err := filepath.EvalSymlinks(childLogical); err == nil && w.workspaceReal[real] {
			return
		}
	}

	w.walkDir(ctx, r, childLogical, depth+1)
}

func (w *walker) emitProjectLocalPmCaches(r scanRootJob, dir string) {
	for _, rel := range projectLocalPmCachePaths {
		candidate := filepath.Join(dir, filepath.FromSlash(rel))
		info, err := os.Stat(candidate)
		if err != nil || !info.IsDir() {
			continue
		}
		w.tryEmit(r, candidate, CleanupTypePmCache)
	}
}

// tryEmit resolves logicalPath's real path and, if it is genuinely
// contained within r's real root, records it as a candidate. Paths
// that cannot be resolved or that escape the root (a symlink pointing
// outside, for instance) are silently dropped.
func (w *walker) tryEmit(r scanRootJob, logicalPath string, cleanupType CleanupType) {
	real, err := filepath.EvalSymlinks(logicalPath)
	if err != nil {
		return
	}
	if !isContained(real, r.realRoot) {
		return
	}
	w.disc.emit(ScanItem{
		Path:         logicalPath,
		CleanupScope: r.scope,
		CleanupType:  cleanupType,
	}, real)
}

func isContained(real, rootReal string) bool {
	if real == rootReal {
		return false
	}
	return strings.HasPrefix(real, rootReal+string(filepath.Separator))
}
