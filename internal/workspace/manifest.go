package workspace

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/kodelint/next-prune/internal/pathutil"
)

var (
	pnpmPackagesKeyRe = regexp.MustCompile(`^packages\s*:`)
	pnpmTopLevelKeyRe = regexp.MustCompile(`^[A-Za-z0-9_-]+\s*:`)
	pnpmListItemRe    = regexp.MustCompile(`^-\s*["']?([^"']+)["']?\s*$`)
)

// collectManifestPatterns reads package.json's workspaces field,
// pnpm-workspace.yaml, and lerna.json's packages field, in that order,
// and returns the normalized, valid workspace patterns. hasManifest is
// true if any of the three sources yielded a raw candidate string, even
// if every one of them was later rejected by normalization.
func collectManifestPatterns(root string) (patterns []string, hasManifest bool) {
	var raw []string
	raw = append(raw, readPackageJSONWorkspaces(root)...)
	raw = append(raw, readPnpmWorkspaceYAML(root)...)
	raw = append(raw, readLernaJSONPackages(root)...)

	hasManifest = len(raw) > 0

	patterns = []string{}
	for _, p := range raw {
		normalized, err := pathutil.NormalizeWorkspacePattern(p)
		if err != nil {
			continue
		}
		patterns = append(patterns, normalized)
	}
	return patterns, hasManifest
}

func readPackageJSONWorkspaces(root string) []string {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return nil
	}
	var doc struct {
		Workspaces json.RawMessage `json:"workspaces"`
	}
	if err := json.Unmarshal(data, &doc); err != nil || doc.Workspaces == nil {
		return nil
	}

	var asArray []string
	if err := json.Unmarshal(doc.Workspaces, &asArray); err == nil {
		return asArray
	}

	var asObject struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(doc.Workspaces, &asObject); err == nil {
		return asObject.Packages
	}
	return nil
}

func readLernaJSONPackages(root string) []string {
	data, err := os.ReadFile(filepath.Join(root, "lerna.json"))
	if err != nil {
		return nil
	}
	var doc struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return doc.Packages
}

// readPnpmWorkspaceYAML is a narrow line-based parser for the one
// field next-prune cares about: the top-level "packages" list. It does
// not attempt general YAML parsing.
func readPnpmWorkspaceYAML(root string) []string {
	data, err := os.ReadFile(filepath.Join(root, "pnpm-workspace.yaml"))
	if err != nil {
		return nil
	}

	lines := strings.Split(string(data), "\n")
	startIdx := -1
	for i, line := range lines {
		if pnpmPackagesKeyRe.MatchString(line) {
			startIdx = i
			break
		}
	}
	if startIdx == -1 {
		return nil
	}

	var items []string
	for _, line := range lines[startIdx+1:] {
		trimmed := strings.TrimRight(line, "\r")
		stripped := strings.TrimSpace(trimmed)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}
		if m := pnpmListItemRe.FindStringSubmatch(stripped); m != nil {
			items = append(items, m[1])
			continue
		}
		if pnpmTopLevelKeyRe.MatchString(stripped) {
			break
		}
	}
	return items
}
