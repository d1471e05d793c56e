package main

import (
	"github.com/spf13/cobra"

	"github.com/nao1215/ehrtable/internal/icd10"
	"github.com/nao1215/ehrtable/internal/model"
	"github.com/nao1215/ehrtable/internal/report"
)

// NewCodesCmd creates the codes command.
func NewCodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "Print the diagnosis to ICD-10 code table",
		Long: `Print the diagnosis names ehrtable recognizes and the ICD-10-CM code
assigned to each. Diagnoses are matched case-sensitively after trimming
surrounding whitespace; anything else is reported as "Not Available".`,
		Args: cobra.NoArgs,
		RunE: runCodesCmd,
	}
}

// runCodesCmd executes the codes command.
func runCodesCmd(cmd *cobra.Command, _ []string) error {
	return report.RenderGrid(cmd.OutOrStdout(), codeTable(icd10.Default()))
}

// codeTable lays out the code map as a report table.
func codeTable(codes icd10.CodeMap) *model.ReportTable {
	table := &model.ReportTable{
		Columns: []string{model.FieldDiagnosis, model.FieldICD10Code, "display"},
	}
	for _, c := range codes.Entries() {
		table.Rows = append(table.Rows, []string{c.Diagnosis, c.Code, c.Display})
	}
	return table
}
