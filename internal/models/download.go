package models

type DownloadResult struct {
	Path        string `json:"path"`
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size"`
}

type BatchItem struct {
	URL   string `json:"url"`
	Name  string `json:"name"`
	Path  string `json:"path,omitempty"`
	Size  int64  `json:"size,omitempty"`
	Error string `json:"error,omitempty"`
}

type BatchResult struct {
	RunID          string      `json:"run_id"`
	InputPath      string      `json:"input_path"`
	OutputDir      string      `json:"output_dir"`
	TotalRecords   int         `json:"total_records"`
	Succeeded      int         `json:"succeeded"`
	Failed         int         `json:"failed"`
	Items          []BatchItem `json:"items"`
	TotalSizeBytes int64       `json:"total_size_bytes"`
	TotalSizeHuman string      `json:"total_size_human"`
	StartedAt      string      `json:"started_at"`
	Duration       string      `json:"duration"`
}
