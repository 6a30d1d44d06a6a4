// Package handlers implements the HTTP handlers for the steam-price-tracker
// API. Probes are plain Echo handlers; everything under /api/v1 is a huma
// operation.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
