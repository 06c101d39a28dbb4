// Package cli wires the next-prune command surface: a Cobra root
// command carrying shared persistent flags, with scan/clean/config
// subcommands registering themselves via init(), exactly as the
// reference CLI tool this module is grown from structures its own
// root command and wipe/version subcommands.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kodelint/next-prune/internal/logging"
)

var (
	debugFlag              bool
	cwdFlag                string
	jsonFlag               bool
	listFlag               bool
	monorepoFlag            bool
	cleanupScopeFlag        string
	noNodeModulesFlag       bool
	noPmCachesFlag          bool
	workspaceDetectFlag     bool
	maxDepthFlag            int
	ignorePathsStr          string
	ignorePaths             []string
)

// RootCmd is the entry point for the next-prune CLI application.
var RootCmd = &cobra.Command{
	Use:   "nextprune",
	Short: "Reclaim disk space from JavaScript/Next.js monorepos.",
	Long: `nextprune finds build artifacts, package-manager caches, and
optionally unused public assets across a JavaScript monorepo, then
deletes a user-approved subset while refusing to touch anything
outside the scanned root.`,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debugFlag {
			logging.SetDebug(true)
		}
		if ignorePathsStr != "" {
			for _, p := range strings.Split(ignorePathsStr, ",") {
				trimmed := strings.TrimSpace(p)
				if trimmed != "" {
					ignorePaths = append(ignorePaths, trimmed)
				}
			}
			logging.Log.Debugf("Ignoring paths: %v", ignorePaths)
		}
		if cmd.Flags().Changed("max-depth") && maxDepthFlag < 0 {
			return fmt.Errorf("--max-depth must be a non-negative integer")
		}
		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Enable debug logging.")
	RootCmd.PersistentFlags().StringVar(&cwdFlag, "cwd", "", "Scan root (defaults to the current directory).")
	RootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Emit the scan listing as JSON instead of a table (read by scan only).")
	RootCmd.PersistentFlags().BoolVar(&listFlag, "list", false, "Accepted but not read: scan always prints its listing, clean never does.")
	RootCmd.PersistentFlags().BoolVar(&monorepoFlag, "monorepo", false, "Force monorepoMode=on.")
	RootCmd.PersistentFlags().StringVar(&cleanupScopeFlag, "cleanup-scope", "", "Comma-separated cleanup-scope token selector.")
	RootCmd.PersistentFlags().BoolVar(&noNodeModulesFlag, "no-node-modules", false, "Exclude node_modules candidates.")
	RootCmd.PersistentFlags().BoolVar(&noPmCachesFlag, "no-pm-caches", false, "Exclude package-manager cache candidates.")
	RootCmd.PersistentFlags().BoolVar(&workspaceDetectFlag, "workspace-detect", false, "Force workspaceDiscoveryMode=manifest-fallback.")
	RootCmd.PersistentFlags().IntVar(&maxDepthFlag, "max-depth", -1, "Maximum scan depth (non-negative integer; unset by default).")
	RootCmd.PersistentFlags().StringVarP(&ignorePathsStr, "ignore", "i", "", "Comma-separated list of paths to never delete.")
}
