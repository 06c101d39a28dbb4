package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kodelint/next-prune/internal/policy"
	"github.com/kodelint/next-prune/internal/report"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List cleanup candidates without deleting anything.",
	Long: `scan discovers cleanup candidates under the target root and
reports what clean would remove. It never deletes: dry-run semantics
are implicit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := resolveAndScan()
		if err != nil {
			return err
		}

		items := policy.FilterNeverDelete(run.items, run.root, run.cfg.NeverDelete)

		if jsonFlag {
			return printJSON(items)
		}
		report.PrintListing(items, fmt.Sprintf("CANDIDATES — %s", run.root))
		return nil
	},
}

func printJSON(items interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

func init() {
	RootCmd.AddCommand(scanCmd)
}
