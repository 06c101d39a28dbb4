// Package config loads and normalizes next-prune's per-project
// configuration from two optional JSON sources at the scan root,
// merging over built-in defaults. All normalization rules here are
// part of the core contract; only the file reads themselves are
// treated as an external collaborator.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kodelint/next-prune/internal/pathutil"
)

// MonorepoMode selects how aggressively workspace scanning is forced.
type MonorepoMode string

const (
	MonorepoAuto MonorepoMode = "auto"
	MonorepoOn   MonorepoMode = "on"
	MonorepoOff  MonorepoMode = "off"
)

// WorkspaceDiscoveryMode selects how the Workspace Resolver looks for
// monorepo member directories.
type WorkspaceDiscoveryMode string

const (
	WorkspaceDiscoveryManifestFallback WorkspaceDiscoveryMode = "manifest-fallback"
	WorkspaceDiscoveryManifestOnly     WorkspaceDiscoveryMode = "manifest-only"
	WorkspaceDiscoveryHeuristicOnly    WorkspaceDiscoveryMode = "heuristic-only"
)

// CleanupScope partitions candidates by where they were discovered.
type CleanupScope string

const (
	ScopeProject   CleanupScope = "project"
	ScopeWorkspace CleanupScope = "workspace"
)

// PruneConfig is the fully normalized, defaulted configuration the
// rest of the pipeline consumes. Every field is resolved by the time
// Load returns one; no untyped "record" shape escapes this package.
type PruneConfig struct {
	AlwaysDelete                 []string
	NeverDelete                  []string
	CheckUnusedAssets            bool
	MonorepoMode                 MonorepoMode
	WorkspaceDiscoveryMode       WorkspaceDiscoveryMode
	CleanupScopes                []CleanupScope
	IncludeNodeModules           bool
	IncludeProjectLocalPmCaches  bool
	MaxScanDepth                 *int
}

// Defaults returns the built-in default configuration.
func Defaults() PruneConfig {
	return PruneConfig{
		AlwaysDelete:                []string{},
		NeverDelete:                 []string{},
		CheckUnusedAssets:           false,
		MonorepoMode:                MonorepoAuto,
		WorkspaceDiscoveryMode:      WorkspaceDiscoveryManifestFallback,
		CleanupScopes:               []CleanupScope{ScopeProject, ScopeWorkspace},
		IncludeNodeModules:          false,
		IncludeProjectLocalPmCaches: true,
		MaxScanDepth:                nil,
	}
}

// Load reads package.json's "next-prune" key and .next-prunerc.json
// from root, merges them over Defaults (the rc file wins on
// collision), and returns the normalized result. Read/parse failures
// on either source are silent; a missing or unreadable source simply
// contributes nothing.
func Load(root string) PruneConfig {
	cfg := Defaults()

	if pkg, ok := readPackageJSONKey(filepath.Join(root, "package.json")); ok {
		applyRaw(&cfg, pkg)
	}
	if rc, ok := readJSONObject(filepath.Join(root, ".next-prunerc.json")); ok {
		applyRaw(&cfg, rc)
	}

	return cfg
}

// readPackageJSONKey reads package.json and returns its top-level
// "next-prune" key, if present and itself a JSON object.
func readPackageJSONKey(path string) (map[string]interface{}, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false
	}
	raw, ok := doc["next-prune"]
	if !ok {
		return nil, false
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// readJSONObject reads a standalone JSON object file such as
// .next-prunerc.json.
func readJSONObject(path string) (map[string]interface{}, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// applyRaw merges a raw JSON object onto cfg, normalizing each
// recognized field and silently dropping unrecognized or malformed
// values, per spec §4.B.
func applyRaw(cfg *PruneConfig, raw map[string]interface{}) {
	if v, ok := raw["alwaysDelete"]; ok {
		cfg.AlwaysDelete = normalizePatternList(v)
	}
	if v, ok := raw["neverDelete"]; ok {
		cfg.NeverDelete = normalizePatternList(v)
	}
	if v, ok := raw["checkUnusedAssets"]; ok {
		if b, ok := v.(bool); ok {
			cfg.CheckUnusedAssets = b
		}
	}
	if v, ok := raw["includeNodeModules"]; ok {
		if b, ok := v.(bool); ok {
			cfg.IncludeNodeModules = b
		}
	}
	if v, ok := raw["includeProjectLocalPmCaches"]; ok {
		if b, ok := v.(bool); ok {
			cfg.IncludeProjectLocalPmCaches = b
		}
	}
	if v, ok := raw["monorepoMode"]; ok {
		cfg.MonorepoMode = normalizeMonorepoMode(v)
	}
	if v, ok := raw["workspaceDiscoveryMode"]; ok {
		cfg.WorkspaceDiscoveryMode = normalizeWorkspaceDiscoveryMode(v)
	}
	if v, ok := raw["cleanupScopes"]; ok {
		cfg.CleanupScopes = normalizeCleanupScopes(v)
	}
	if v, ok := raw["maxScanDepth"]; ok {
		cfg.MaxScanDepth = normalizeMaxScanDepth(v)
	}
}

// normalizePatternList filters v down to strings, normalizes each as a
// PathPattern, and deduplicates while preserving first-occurrence
// order. Invalid entries are dropped silently.
func normalizePatternList(v interface{}) []string {
	arr, ok := v.([]interface{})
	if !ok {
		return []string{}
	}

	seen := make(map[string]bool)
	out := []string{}
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			continue
		}
		normalized, err := pathutil.NormalizePathPattern(s, false)
		if err != nil {
			continue
		}
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}

func normalizeMonorepoMode(v interface{}) MonorepoMode {
	s, ok := v.(string)
	if !ok {
		return MonorepoAuto
	}
	switch MonorepoMode(s) {
	case MonorepoAuto, MonorepoOn, MonorepoOff:
		return MonorepoMode(s)
	default:
		return MonorepoAuto
	}
}

func normalizeWorkspaceDiscoveryMode(v interface{}) WorkspaceDiscoveryMode {
	s, ok := v.(string)
	if !ok {
		return WorkspaceDiscoveryManifestFallback
	}
	switch s {
	case string(WorkspaceDiscoveryManifestFallback), string(WorkspaceDiscoveryManifestOnly), string(WorkspaceDiscoveryHeuristicOnly):
		return WorkspaceDiscoveryMode(s)
	case "auto":
		return WorkspaceDiscoveryManifestFallback
	case "manifest":
		return WorkspaceDiscoveryManifestOnly
	case "heuristic":
		return WorkspaceDiscoveryHeuristicOnly
	default:
		return WorkspaceDiscoveryManifestFallback
	}
}

// normalizeCleanupScopes filters v to {project, workspace}, deduping.
// An explicit empty array is preserved as empty: the caller interprets
// zero scopes as "scan nothing" per spec's recorded open question.
func normalizeCleanupScopes(v interface{}) []CleanupScope {
	arr, ok := v.([]interface{})
	if !ok {
		return Defaults().CleanupScopes
	}

	seen := make(map[CleanupScope]bool)
	out := []CleanupScope{}
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			continue
		}
		scope := CleanupScope(s)
		if scope != ScopeProject && scope != ScopeWorkspace {
			continue
		}
		if seen[scope] {
			continue
		}
		seen[scope] = true
		out = append(out, scope)
	}
	return out
}

// normalizeMaxScanDepth accepts a non-negative integer (JSON numbers
// decode to float64); any other shape or a negative value falls back
// to unlimited (nil).
func normalizeMaxScanDepth(v interface{}) *int {
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	if f < 0 || f != float64(int(f)) {
		return nil
	}
	depth := int(f)
	return &depth
}
