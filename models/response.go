package models

// HealthCheckResponse returns the health check response, true or false
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// RootResponse is served from the API root as a human-readable banner
type RootResponse struct {
	Message string `json:"message"`
}
