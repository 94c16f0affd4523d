package models

// WebSocket message types

type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// ProgressUpdate is pushed over the WebSocket while an ingestion is running.
// Percent moves through fixed bands: payload read 5-25, extraction 30-90,
// finalization 100.
type ProgressUpdate struct {
	ItemTitle string  `json:"item_title"`
	Stage     string  `json:"stage"`
	Percent   float64 `json:"percent"`
}

// API Error response

type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
