package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/paybridge/internal/sources/daxco"
	"github.com/agentstation/paybridge/pkg/payroll"
)

var transformOutput string

// transformCmd represents the transform command.
var transformCmd = &cobra.Command{
	Use:   "transform <file>",
	Short: "Transform a payroll export into canonical records",
	Long: `Transform parses a Daxco payroll export file and prints the canonical
records. Without a directory connection the records carry the
regular-earnings defaults; use the HTTP API for directory-enriched runs.`,
	Example: `  paybridge transform export.csv
  paybridge transform export.csv --output csv > records.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().StringVarP(&transformOutput, "output", "o", "json", "output format (json or csv)")
}

func runTransform(cobraCmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	records, err := daxco.Transform(cobraCmd.Context(), data, nil)
	if err != nil {
		return err
	}

	switch transformOutput {
	case "csv":
		return payroll.WriteCSV(os.Stdout, records)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	default:
		return fmt.Errorf("unknown output format %q (want json or csv)", transformOutput)
	}
}
