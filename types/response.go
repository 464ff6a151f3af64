package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type SimplifyResponse struct {
	Original   string `json:"original"`
	Simplified string `json:"simplified"`
}

// ProcessingDocumentStatus is one SSE progress event on the streaming
// simplify endpoint.
type ProcessingDocumentStatus struct {
	Status          string  `json:"status"`
	Message         string  `json:"message,omitempty"`
	Progress        float64 `json:"progress"`
	TotalChunks     int     `json:"total_chunks"`
	ProcessedChunks int     `json:"processed_chunks"`
}
