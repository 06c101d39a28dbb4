package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kodelint/next-prune/internal/logging"
	"github.com/kodelint/next-prune/internal/policy"
	"github.com/kodelint/next-prune/internal/remove"
	"github.com/kodelint/next-prune/internal/report"
	"github.com/kodelint/next-prune/internal/scan"
)

var (
	yesFlag     bool
	dryRunFlag  bool
	applyFlag   bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Scan for cleanup candidates and delete the approved subset.",
	Long: `clean performs the same discovery as scan, then deletes the
candidates that survive never-delete filtering. Use --dry-run to see
what would happen without touching the filesystem, or --yes for
non-interactive execution.

A non-interactive run that would delete any node_modules or
package-manager-cache candidate is refused unless --apply is also
given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := resolveAndScan()
		if err != nil {
			return err
		}

		selected := policy.FilterNeverDelete(run.items, run.root, run.cfg.NeverDelete)
		if len(selected) == 0 {
			logging.Log.Info("Nothing to clean.")
			return nil
		}

		if dryRunFlag {
			report.PrintListing(selected, fmt.Sprintf("WOULD DELETE — %s", run.root))
			return nil
		}

		if yesFlag {
			if policy.AnyApplyProtected(selected) && !applyFlag {
				fmt.Fprintln(os.Stderr, "refusing to delete node_modules/pm-cache candidates without --apply")
				os.Exit(1)
			}
		} else if policy.AnyApplyProtected(selected) {
			if !confirm(fmt.Sprintf("This selection includes node_modules/pm-cache directories. Delete all %d candidates?", len(selected))) {
				return fmt.Errorf("aborted")
			}
		} else if !confirm(fmt.Sprintf("Delete %d candidates?", len(selected))) {
			return fmt.Errorf("aborted")
		}

		items := make([]remove.Item, len(selected))
		for i, s := range selected {
			items[i] = remove.Item{Path: s.Path, Size: float64(s.Stats.Size)}
		}
		summary := remove.DeleteItems(items)

		deleted := make([]scan.ScanItem, 0, summary.DeletedCount)
		for i, r := range summary.Results {
			if r.Ok {
				deleted = append(deleted, selected[i])
			}
		}
		typeTotals := report.SummaryByType(deleted)

		report.PrintDeletionSummary(summary, typeTotals, false)
		if summary.FailureCount > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	RootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Non-interactive execution.")
	cleanCmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "Skip deletion; report what would be removed.")
	cleanCmd.Flags().BoolVar(&applyFlag, "apply", false, "Required with --yes when the selection contains apply-protected items.")
}
