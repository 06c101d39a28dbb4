package workspace

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestReadPackageJSONWorkspacesArray(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "package.json"), `{"workspaces": ["apps/*", "packages/*"]}`)

	got := readPackageJSONWorkspaces(dir)
	want := []string{"apps/*", "packages/*"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadPackageJSONWorkspacesObjectForm(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "package.json"), `{"workspaces": {"packages": ["apps/*"]}}`)

	got := readPackageJSONWorkspaces(dir)
	want := []string{"apps/*"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadPnpmWorkspaceYAML(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "pnpm-workspace.yaml"), `
# a comment
packages:
  - 'apps/*'
  - "packages/*"
  - libs/shared

onlyBuiltDependencies:
  - foo
`)

	got := readPnpmWorkspaceYAML(dir)
	want := []string{"apps/*", "packages/*", "libs/shared"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadLernaJSONPackages(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "lerna.json"), `{"packages": ["packages/*"]}`)

	got := readLernaJSONPackages(dir)
	want := []string{"packages/*"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCollectManifestPatternsHasManifestEvenWhenAllRejected(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "package.json"), `{"workspaces": ["../escape"]}`)

	patterns, hasManifest := collectManifestPatterns(dir)
	if !hasManifest {
		t.Errorf("hasManifest = false, want true (raw candidate existed)")
	}
	if len(patterns) != 0 {
		t.Errorf("patterns = %v, want empty (all rejected)", patterns)
	}
}

func TestCollectManifestPatternsAbsentYieldsNoManifest(t *testing.T) {
	dir := t.TempDir()
	patterns, hasManifest := collectManifestPatterns(dir)
	if hasManifest {
		t.Errorf("hasManifest = true, want false")
	}
	if len(patterns) != 0 {
		t.Errorf("patterns = %v, want empty", patterns)
	}
}
