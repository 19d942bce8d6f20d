package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/paybridge/internal/config"
	"github.com/agentstation/paybridge/internal/directory/mssql"
	"github.com/agentstation/paybridge/internal/sources/daxco"
	"github.com/agentstation/paybridge/pkg/errors"
	"github.com/agentstation/paybridge/pkg/validate"
)

var validateCompanyID int

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Transform and validate a payroll export",
	Long: `Validate parses a Daxco payroll export file, fetches the company's
employee directory, transforms the rows with directory enrichment, and
prints the field-level validation report.`,
	Example: `  paybridge validate export.csv --company 7`,
	Args:    cobra.ExactArgs(1),
	RunE:    runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().IntVar(&validateCompanyID, "company", 0, "company ID for the employee directory fetch")
	_ = validateCmd.MarkFlagRequired("company")
}

func runValidate(cobraCmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := mssql.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("opening directory database: %w", err)
	}
	defer func() { _ = client.Close() }()

	ctx := cobraCmd.Context()
	employees, err := client.FetchEmployees(ctx, validateCompanyID)
	if err != nil {
		// Ctrl-C during the fetch is not a failure worth reporting
		if errors.IsCanceled(err) {
			return nil
		}
		return err
	}

	records, err := daxco.Transform(ctx, data, employees)
	if err != nil {
		return err
	}

	result := validate.Records(ctx, records, employees)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
