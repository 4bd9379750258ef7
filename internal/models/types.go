package models

type Record struct {
	URL  string `json:"url"`
	Name string `json:"restaurant_name"`
}

type RecordList struct {
	InputPath string   `json:"input_path"`
	Records   []Record `json:"records"`
	Total     int      `json:"total"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
	Command   string `json:"command"`
}
