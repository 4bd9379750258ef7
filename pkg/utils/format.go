package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"imagefetch/internal/models"
)

func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// PrintJSON writes data to w as indented JSON followed by a newline.
func PrintJSON(w io.Writer, data any) error {
	jsonOutput, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(jsonOutput))
	return nil
}

func PrintError(w io.Writer, err error, command string) {
	errorResp := models.ErrorResponse{
		Error:     err.Error(),
		Timestamp: FormatTime(time.Now()),
		Command:   command,
	}
	if err := PrintJSON(w, errorResp); err != nil {
		slog.Error("Failed to print error in JSON format", "error", err)
		fmt.Fprintln(w, "Error: ", errorResp.Error)
	}
}

func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
