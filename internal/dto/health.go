package dto

// HealthResponse reports process/database health for the probe endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Details any    `json:"details,omitempty"`
}
