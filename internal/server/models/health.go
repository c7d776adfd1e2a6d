package models

// HealthInfo is the payload of GET /api/health.
type HealthInfo struct {
	// Status is always "OK" while the process can answer.
	Status string `json:"status"`
	// Timestamp is the UTC response time, ISO-8601 with milliseconds.
	Timestamp string `json:"timestamp"`
	// Message is a fixed human readable line.
	Message string `json:"message"`
	// Version of the running build.
	Version string `json:"version"`
	// ExampleCount comes from the data provider.
	ExampleCount int `json:"exampleCount"`
}
