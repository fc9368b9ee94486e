package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show library statistics",
	Long: `Display how many books the library holds and what share of them
you have read.

Examples:
  shelfr stats
  shelfr stats --json`,
	RunE: runStatistics,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().Bool("json", false, "Output as JSON")
}

func runStatistics(cmd *cobra.Command, _ []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	mgr, cleanup, err := openManager()
	if err != nil {
		return err
	}
	defer cleanup()

	stats := mgr.Statistics()

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(stats)
	}

	fmt.Println(renderStatistics(stats))

	return nil
}
