package cmd

import (
	"github.com/spf13/cobra"

	"imagefetch/internal/models"
	"imagefetch/internal/records"
	"imagefetch/pkg/utils"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List the records the input file yields",
	Long: `Parse the input file and print the usable records as JSON without downloading anything.

Rows missing a url or a restaurant_name are dropped, exactly as fetch would drop them.`,
	Example: `  # Show what fetch would download
  imagefetch records

  # Check an Excel workbook
  imagefetch records --input restaurants.xlsx`,
	Args: cobra.NoArgs,
	RunE: runRecords,
}

func runRecords(cmd *cobra.Command, args []string) error {
	input := getInputFile(cmd)

	recs, err := records.LoadFile(input)
	if err != nil {
		utils.PrintError(cmd.ErrOrStderr(), err, "records")
		return err
	}

	list := models.RecordList{
		InputPath: input,
		Records:   recs,
		Total:     len(recs),
	}
	if err := utils.PrintJSON(cmd.OutOrStdout(), list); err != nil {
		utils.PrintError(cmd.ErrOrStderr(), err, "records")
		return err
	}

	return nil
}
