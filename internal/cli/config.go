package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the fully resolved configuration for the target root.",
	Long: `config loads package.json's "next-prune" key and
.next-prunerc.json, merges them over the built-in defaults, applies
any CLI flag overrides, and prints the result as JSON. Useful for
debugging merge precedence between the two config sources.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot()
		if err != nil {
			return err
		}

		cfg := loadEffectiveConfig(root)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
