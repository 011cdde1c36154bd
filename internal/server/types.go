package server

import "github.com/agbru/fibduality/pkg/models"

// MultiplyResponse is the standardized JSON response for a multiplication
// request.
type MultiplyResponse struct {
	// A and B echo the requested operands.
	A string `json:"a"`
	B string `json:"b"`
	// Voltage is the read voltage used for the run.
	Voltage float64 `json:"voltage"`
	// Result is the simulation outcome. Omitted if an error occurred.
	Result *models.MultiplicationResult `json:"result,omitempty"`
	// Duration is the formatted execution time string.
	Duration string `json:"duration"`
}

// GCDResponse is the standardized JSON response for a GCD request.
type GCDResponse struct {
	// A and B echo the requested operands.
	A string `json:"a"`
	B string `json:"b"`
	// Result is the simulation outcome. Omitted if an error occurred.
	Result *models.GCDResult `json:"result,omitempty"`
	// Duration is the formatted execution time string.
	Duration string `json:"duration"`
}

// ErrorResponse is the standardized JSON response for an API error.
type ErrorResponse struct {
	// Error is the short error code or status text.
	Error string `json:"error"`
	// Message is a descriptive error message.
	Message string `json:"message,omitempty"`
}
