package dto

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"` // ISO-8601, UTC, millisecond precision
}
