package cli

import (
	"os"

	"github.com/kodelint/next-prune/internal/assets"
	"github.com/kodelint/next-prune/internal/classify"
	"github.com/kodelint/next-prune/internal/config"
	"github.com/kodelint/next-prune/internal/scan"
)

// resolvedRun bundles everything a scan/clean subcommand needs after
// resolving config, flags, and candidate discovery: the root the run
// operates on, the effective config, and the candidate set filtered to
// the allowed CandidateTypes. Never-delete filtering is not applied
// here; the subcommands apply it to items themselves.
type resolvedRun struct {
	root     string
	cfg      config.PruneConfig
	items    []scan.ScanItem
	allowed  map[classify.CandidateType]bool
}

func resolveRoot() (string, error) {
	if cwdFlag != "" {
		return cwdFlag, nil
	}
	return os.Getwd()
}

// resolveAndScan loads the project config, folds CLI flag overrides
// on top, runs the scanner (and, if enabled, the asset resolver), and
// filters the result down to the CandidateTypes the --cleanup-scope
// token selector and --no-node-modules/--no-pm-caches flags allow.
func resolveAndScan() (*resolvedRun, error) {
	root, err := resolveRoot()
	if err != nil {
		return nil, err
	}

	cfg := config.Load(root)
	applyFlagOverrides(&cfg)

	allowed, err := classify.ResolveScopeTokens(cleanupScopeFlag, cfg.IncludeNodeModules, cfg.IncludeProjectLocalPmCaches)
	if err != nil {
		return nil, err
	}

	opts := scan.OptionsFromConfig(cfg)
	items := scan.Scan(root, opts)

	if cfg.CheckUnusedAssets {
		unused := assets.FindUnused(root, assets.Options{})
		items = append(items, assets.ToScanItems(unused, config.ScopeProject)...)
	}

	filtered := make([]scan.ScanItem, 0, len(items))
	for _, item := range items {
		if allowed[classify.Classify(item)] {
			filtered = append(filtered, item)
		}
	}

	if len(ignorePaths) > 0 {
		cfg.NeverDelete = append(cfg.NeverDelete, ignorePaths...)
	}

	return &resolvedRun{root: root, cfg: cfg, items: filtered, allowed: allowed}, nil
}

// loadEffectiveConfig loads a root's config and folds CLI flag
// overrides on top, without running a scan. Used by the config
// subcommand to show what a scan/clean run would resolve to, except
// that --ignore paths are not merged into NeverDelete here.
func loadEffectiveConfig(root string) config.PruneConfig {
	cfg := config.Load(root)
	applyFlagOverrides(&cfg)
	return cfg
}

func applyFlagOverrides(cfg *config.PruneConfig) {
	if monorepoFlag {
		cfg.MonorepoMode = config.MonorepoOn
	}
	if workspaceDetectFlag {
		cfg.WorkspaceDiscoveryMode = config.WorkspaceDiscoveryManifestFallback
	}
	if maxDepthFlag >= 0 {
		depth := maxDepthFlag
		cfg.MaxScanDepth = &depth
	}
	if noNodeModulesFlag {
		cfg.IncludeNodeModules = false
	}
	if noPmCachesFlag {
		cfg.IncludeProjectLocalPmCaches = false
	}
}
