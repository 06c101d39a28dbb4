package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kodelint/next-prune/internal/config"
)

func mkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	mkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func defaultOpts() Options {
	cfg := config.Defaults()
	return OptionsFromConfig(cfg)
}

func findByPath(items []ScanItem, path string) (ScanItem, bool) {
	for _, it := range items {
		if it.Path == path {
			return it, true
		}
	}
	return ScanItem{}, false
}

func TestScanFindsArtifactDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".next", "cache", "x.txt"), "data")

	items := Scan(root, defaultOpts())
	item, ok := findByPath(items, filepath.Join(root, ".next"))
	if !ok {
		t.Fatalf("expected .next to be discovered, got %+v", items)
	}
	if item.CleanupType != CleanupTypeArtifact {
		t.Errorf("CleanupType = %q, want artifact", item.CleanupType)
	}
	if item.CleanupScope != config.ScopeProject {
		t.Errorf("CleanupScope = %q, want project", item.CleanupScope)
	}
}

func TestScanSymlinkEscapeIgnored(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	outsideTarget := filepath.Join(outside, "dist-output")
	mkdirAll(t, outsideTarget)

	link := filepath.Join(root, "dist-link")
	if err := os.Symlink(outsideTarget, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	writeFile(t, filepath.Join(root, "next.config.js"), "module.exports = { distDir: 'dist-link' }")

	items := Scan(root, defaultOpts())
	if _, ok := findByPath(items, link); ok {
		t.Errorf("expected dist-link (escapes root) to be dropped, got %+v", items)
	}
}

func TestScanWorkspaceBeatsProjectOnCollision(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"workspaces": ["packages/*"]}`)
	writeFile(t, filepath.Join(root, "packages", "web", "package.json"), `{}`)
	mkdirAll(t, filepath.Join(root, "packages", "web", "node_modules", "x"))

	cfg := config.Defaults()
	cfg.IncludeNodeModules = true
	opts := OptionsFromConfig(cfg)

	items := Scan(root, opts)
	nm := filepath.Join(root, "packages", "web", "node_modules")
	item, ok := findByPath(items, nm)
	if !ok {
		t.Fatalf("expected node_modules candidate, got %+v", items)
	}
	if item.CleanupScope != config.ScopeWorkspace {
		t.Errorf("CleanupScope = %q, want workspace", item.CleanupScope)
	}
	if item.CleanupType != CleanupTypeWorkspaceNodeModules {
		t.Errorf("CleanupType = %q, want workspace-node-modules", item.CleanupType)
	}

	count := 0
	for _, it := range items {
		if it.Path == nm {
			count++
		}
	}
	if count != 1 {
		t.Errorf("node_modules emitted %d times, want exactly 1 (no double-counting)", count)
	}
}

func TestScanPnpmNegationRespected(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pnpm-workspace.yaml"), "packages:\n  - apps/*\n  - '!apps/ignored'\n")
	writeFile(t, filepath.Join(root, "apps", "site", "package.json"), `{}`)
	writeFile(t, filepath.Join(root, "apps", "site", ".next", "x"), "data")
	writeFile(t, filepath.Join(root, "apps", "ignored", "package.json"), `{}`)
	writeFile(t, filepath.Join(root, "apps", "ignored", ".next", "x"), "data")

	cfg := config.Defaults()
	cfg.CleanupScopes = []config.CleanupScope{config.ScopeWorkspace}
	opts := OptionsFromConfig(cfg)

	items := Scan(root, opts)
	if _, ok := findByPath(items, filepath.Join(root, "apps", "site", ".next")); !ok {
		t.Errorf("expected apps/site/.next to be discovered")
	}
	if _, ok := findByPath(items, filepath.Join(root, "apps", "ignored", ".next")); ok {
		t.Errorf("expected apps/ignored/.next to be excluded by negation")
	}
}

func TestScanMaxDepthGatesDescentButNotArtifactEmission(t *testing.T) {
	root := t.TempDir()
	// ".next" sits inside "a", found while walking "a" at depth 1: the
	// artifact-name check fires regardless of maxDepth. "b" is a plain
	// subdirectory at that same depth, so descent into it is refused
	// and anything nested under it is never reached.
	writeFile(t, filepath.Join(root, "a", ".next", "x"), "data")
	writeFile(t, filepath.Join(root, "a", "b", "c", ".next", "x"), "data")

	cfg := config.Defaults()
	depth := 1
	cfg.MaxScanDepth = &depth
	opts := OptionsFromConfig(cfg)

	items := Scan(root, opts)
	if _, ok := findByPath(items, filepath.Join(root, "a", ".next")); !ok {
		t.Errorf("expected a/.next to be emitted despite sitting at the depth limit, got %+v", items)
	}
	if _, ok := findByPath(items, filepath.Join(root, "a", "b", "c", ".next")); ok {
		t.Errorf("expected deeply nested .next beyond max depth to not be reached")
	}
}

func TestScanVercelOutputDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".vercel", "output", "static", "x"), "data")
	writeFile(t, filepath.Join(root, ".vercel", "project.json"), `{}`)

	items := Scan(root, defaultOpts())
	if _, ok := findByPath(items, filepath.Join(root, ".vercel", "output")); !ok {
		t.Errorf("expected .vercel/output to be discovered, got %+v", items)
	}
	if _, ok := findByPath(items, filepath.Join(root, ".vercel")); ok {
		t.Errorf(".vercel itself should not be emitted")
	}
}

func TestScanProjectLocalPmCache(t *testing.T) {
	root := t.TempDir()
	mkdirAll(t, filepath.Join(root, ".npm"))

	items := Scan(root, defaultOpts())
	item, ok := findByPath(items, filepath.Join(root, ".npm"))
	if !ok {
		t.Fatalf("expected .npm pm-cache candidate, got %+v", items)
	}
	if item.CleanupType != CleanupTypePmCache {
		t.Errorf("CleanupType = %q, want pm-cache", item.CleanupType)
	}
}

func TestScanSortedBySizeDescThenPathAsc(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".next", "big.bin"), string(make([]byte, 2048)))
	writeFile(t, filepath.Join(root, "out", "small.bin"), "x")

	items := Scan(root, defaultOpts())
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %+v", len(items), items)
	}
	if items[0].Stats.Size < items[1].Stats.Size {
		t.Errorf("items not sorted by size desc: %+v", items)
	}
}
