package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"imagefetch/internal/s3client"
	"imagefetch/pkg/utils"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload the downloaded images to S3",
	Long: `Upload the images in the output directory to an S3-compatible bucket.

Each file is uploaded individually unless --archive is given, in which case the
directory is zipped first and uploaded as one object. Objects are placed under
--destination, or under imagefetch/<random id> when no destination is given.

Bucket credentials come from API_URL, ACCESS_KEY, SECRET_KEY, BUCKET_NAME and REGION.`,
	Example: `  # Upload the configured output directory
  imagefetch upload

  # Upload a zip of a specific directory without prompting
  imagefetch upload --output images/ --archive --confirm

  # Upload into a fixed folder
  imagefetch upload --destination "restaurants/2024"`,
	Args: cobra.NoArgs,
	RunE: runUpload,
}

func runUpload(cmd *cobra.Command, args []string) error {
	dir := getOutputDir(cmd)
	destination, _ := cmd.Flags().GetString("destination")
	archive, _ := cmd.Flags().GetBool("archive")
	confirm, _ := cmd.Flags().GetBool("confirm")

	if destination == "" {
		destination = "imagefetch/" + uuid.NewString()
	}

	if err := utils.ValidateDir(dir); err != nil {
		utils.PrintError(cmd.ErrOrStderr(), err, "upload")
		return err
	}

	if !confirm {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Upload operation summary:\n")
		fmt.Fprintf(out, "  Bucket: %s\n", cfg.BucketName)
		fmt.Fprintf(out, "  Source: %s\n", dir)
		fmt.Fprintf(out, "  Destination: %s\n", destination)
		fmt.Fprintf(out, "  Archive: %t\n", archive)

		fmt.Fprint(out, "Continue with upload? (y/N): ")
		var response string
		fmt.Fscanln(cmd.InOrStdin(), &response)
		if !slices.Contains([]string{"y", "yes"}, strings.ToLower(response)) {
			fmt.Fprintln(out, "Upload cancelled.")
			return nil
		}
	}

	client, err := s3client.New(cfg)
	if err != nil {
		utils.PrintError(cmd.ErrOrStderr(), err, "upload")
		return err
	}

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(timeout)*time.Second)
	defer cancel()

	if isVerbose(cmd) {
		cmd.Printf("Starting upload operation...\n")
		cmd.Printf("  Source: %s\n", dir)
		cmd.Printf("  Destination: %s\n", destination)
	}

	result, err := client.UploadDirectory(ctx, dir, destination, archive)
	if err != nil {
		utils.PrintError(cmd.ErrOrStderr(), err, "upload")
		return err
	}

	if err := utils.PrintJSON(cmd.OutOrStdout(), result); err != nil {
		utils.PrintError(cmd.ErrOrStderr(), err, "upload")
		return err
	}

	if isVerbose(cmd) {
		cmd.Println("Upload operation completed successfully")
	}
	return nil
}

func init() {
	uploadCmd.Flags().StringP("destination", "d", "", "Destination folder in the bucket (default: imagefetch/<random id>)")
	uploadCmd.Flags().Bool("archive", false, "Upload a single zip archive instead of individual files")
	uploadCmd.Flags().Bool("confirm", false, "Skip confirmation prompt")
	uploadCmd.Flags().Int("timeout", 3600, "Timeout in seconds for the operation (default: 1 hour)")
}
