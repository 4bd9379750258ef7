package cmd

import (
	"github.com/spf13/cobra"

	"imagefetch/internal/batch"
	"imagefetch/internal/fetcher"
	"imagefetch/internal/records"
	"imagefetch/pkg/utils"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download every image listed in the input file",
	Long: `Download every image listed in the input file into the output directory.

The output directory is created (with parents) if missing. Rows without a url or
restaurant_name are skipped. Each image is saved as <restaurant_name><ext>, where
<ext> is .jpeg, .png, .gif, .bmp or .webp from the response Content-Type, or empty
for any other type. A failed download is reported and the run moves on; only an
unreadable input or an output directory that cannot be created fails the command.`,
	Example: `  # Download using the configured input and output
  imagefetch fetch

  # Read an Excel workbook and write to a custom directory
  imagefetch fetch --input restaurants.xlsx --output images/

  # Download four images at a time and print a JSON summary
  imagefetch fetch --workers 4 --json`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	input := getInputFile(cmd)
	output := getOutputDir(cmd)
	workers := getWorkers(cmd)
	printSummary, _ := cmd.Flags().GetBool("json")

	if err := batch.EnsureOutputDir(output); err != nil {
		utils.PrintError(cmd.ErrOrStderr(), err, "fetch")
		return err
	}

	recs, err := records.LoadFile(input)
	if err != nil {
		utils.PrintError(cmd.ErrOrStderr(), err, "fetch")
		return err
	}

	if isVerbose(cmd) {
		cmd.Printf("Starting fetch operation...\n")
		cmd.Printf("  Input: %s (%d records)\n", input, len(recs))
		cmd.Printf("  Output: %s\n", output)
		cmd.Printf("  Workers: %d\n", workers)
	}

	runner := batch.NewRunner(fetcher.New(nil), output, workers, cmd.OutOrStdout(), cmd.ErrOrStderr())
	result := runner.Run(cmd.Context(), recs)
	result.InputPath = input

	if printSummary {
		if err := utils.PrintJSON(cmd.OutOrStdout(), result); err != nil {
			utils.PrintError(cmd.ErrOrStderr(), err, "fetch")
		}
	}

	if isVerbose(cmd) {
		cmd.Printf("Fetch completed: %d downloaded, %d failed, %s in %s\n",
			result.Succeeded, result.Failed, result.TotalSizeHuman, result.Duration)
	}

	return nil
}

func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("workers", "w", 0, "Number of downloads to run at once (default: WORKERS or 1, one after another)")
	cmd.Flags().Bool("json", false, "Print a JSON summary of the run")
}

func init() {
	addFetchFlags(fetchCmd)
}
