package cmd

import (
	"github.com/spf13/cobra"

	"imagefetch/config"
)

var (
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "imagefetch",
	Short: "Download images listed in a CSV or XLSX file",
	Long: `imagefetch reads (url, restaurant_name) rows from a CSV or XLSX file and downloads
each image into an output directory, naming the file after the row and picking the
extension from the response Content-Type.

Running imagefetch without a subcommand is the same as "imagefetch fetch".

By default the input is image-urls.csv and images are written to output/.
Configuration is loaded from .env file or environment variables (INPUT_FILE,
OUTPUT_DIR, WORKERS), and the --input, --output and --workers flags override it.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFetch,
}

func Execute(config *config.Config) error {
	cfg = config
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(uploadCmd)

	rootCmd.PersistentFlags().StringP("input", "i", "", "Override input file from config")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Override output directory from config")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	addFetchFlags(rootCmd)
}

func getInputFile(cmd *cobra.Command) string {
	input, _ := cmd.Flags().GetString("input")
	if input != "" {
		return input
	}
	return cfg.InputFile
}

func getOutputDir(cmd *cobra.Command) string {
	output, _ := cmd.Flags().GetString("output")
	if output != "" {
		return output
	}
	return cfg.OutputDir
}

func getWorkers(cmd *cobra.Command) int {
	workers := cfg.Workers
	if cmd.Flags().Changed("workers") {
		workers, _ = cmd.Flags().GetInt("workers")
	}
	if workers < 1 {
		return 1
	}
	return workers
}

func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}
