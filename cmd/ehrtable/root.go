package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/ehrtable/internal/config"
)

// NewRootCmd creates the root command for ehrtable.
// Running it without a subcommand builds the report.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ehrtable",
		Short: "Annotate EHR records with ICD-10 codes and export them as a table",
		Long: `ehrtable reads processed patient records from a JSON file, looks up the
ICD-10 code for each diagnosis, prints the records as a grid table and writes
them to a CSV file.

Diagnoses are matched exactly after trimming surrounding whitespace.
Records whose diagnosis is not in the code table get "Not Available".

Examples:
  # Read module3_processed_ehr.json and write module3_output_table.csv
  ehrtable

  # Use other file locations
  ehrtable -i records.json -o table.csv

  # Also write a Markdown report
  ehrtable -m report.md

  # Show the diagnosis code table
  ehrtable codes`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReportCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging and the coverage summary")

	cmd.Flags().StringP("input", "i", config.DefaultInputFile,
		"Processed EHR JSON file to read")
	cmd.Flags().StringP("output", "o", config.DefaultOutputFile,
		"CSV file to write (overwritten if it exists)")
	cmd.Flags().StringP("markdown", "m", "",
		"Also write a Markdown report to this path")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: "+config.DefaultConfigFile+" in current, XDG config or home directory)")

	cmd.AddCommand(NewCodesCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
