package dto

// ImportDatasetRequest payload for CSV imports.
type ImportDatasetRequest struct {
	Path string `json:"path"`
}

// GenerateDatasetRequest payload for synthetic dataset generation. Zero
// values fall back to configured defaults.
type GenerateDatasetRequest struct {
	Count     int    `json:"count"`
	Seed      int64  `json:"seed"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// DatasetResponse describes the currently loaded dataset.
type DatasetResponse struct {
	Version     string `json:"version"`
	TicketCount int    `json:"ticket_count"`
	Source      string `json:"source,omitempty"`
}
