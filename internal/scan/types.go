// Package scan implements the concurrent, symlink-safe directory walk
// that discovers cleanup candidates under a project root and,
// optionally, its monorepo workspace members.
package scan

import (
	"time"

	"github.com/kodelint/next-prune/internal/config"
)

// CleanupType is the fine-grained origin tag a ScanItem is discovered
// with, preserved through classification.
type CleanupType string

const (
	CleanupTypeArtifact               CleanupType = "artifact"
	CleanupTypeAsset                  CleanupType = "asset"
	CleanupTypePmCache                CleanupType = "pm-cache"
	CleanupTypeWorkspaceNodeModules   CleanupType = "workspace-node-modules"
)

// ArtifactStats is the recursive size/age/count summary computed for a
// ScanItem after discovery.
type ArtifactStats struct {
	Size        int64
	Mtime       time.Time
	FileCount   int64
	IsDirectory bool
	Error       string
}

// ScanItem is a single deletion candidate discovered under a scan
// root: its logical (un-followed) path, its recursive stats, and the
// scope/type it was discovered under.
type ScanItem struct {
	Path         string
	Stats        ArtifactStats
	CleanupScope config.CleanupScope
	CleanupType  CleanupType
}

// Options configures a single Scan call. It mirrors the fields of
// config.PruneConfig that the scanner itself consumes; the caller is
// responsible for resolving a PruneConfig down to Options (the CLI
// layer folds its flag overrides into the PruneConfig first; --ignore
// is merged into NeverDelete instead and never reaches Options).
type Options struct {
	SkipDirs                    []string
	MonorepoMode                 config.MonorepoMode
	WorkspaceDiscoveryMode       config.WorkspaceDiscoveryMode
	CleanupScopes                []config.CleanupScope
	IncludeNodeModules           bool
	IncludeProjectLocalPmCaches  bool
	MaxDepth                     *int
}

// OptionsFromConfig builds scanner Options from a resolved PruneConfig.
func OptionsFromConfig(cfg config.PruneConfig) Options {
	return Options{
		MonorepoMode:                cfg.MonorepoMode,
		WorkspaceDiscoveryMode:      cfg.WorkspaceDiscoveryMode,
		CleanupScopes:               cfg.CleanupScopes,
		IncludeNodeModules:          cfg.IncludeNodeModules,
		IncludeProjectLocalPmCaches: cfg.IncludeProjectLocalPmCaches,
		MaxDepth:                    cfg.MaxScanDepth,
	}
}

func (o Options) hasScope(scope config.CleanupScope) bool {
	for _, s := range o.CleanupScopes {
		if s == scope {
			return true
		}
	}
	return false
}
