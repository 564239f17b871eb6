package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// RootResponse represents the liveness response
// swagger:model RootResponse
type RootResponse struct {
	// Service status
	// default: healthy
	Status string `json:"status"`

	// Service name
	// default: EV Scan API
	Service string `json:"service"`

	// Current server time
	Timestamp string `json:"timestamp"`

	// Documentation location
	// default: /swagger/index.html
	Documentation string `json:"documentation"`
}

// NewRootHandler returns the liveness handler mounted at /.
// @Summary Liveness check
// @Description Reports the service as reachable, with a pointer to the API documentation.
// @Tags health
// @Produce json
// @Success 200 {object} handlers.RootResponse "Service is up"
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RootResponse{
			Status:        "healthy",
			Service:       "EV Scan API",
			Timestamp:     time.Now().UTC().Format(time.RFC3339),
			Documentation: "/swagger/index.html",
		})
	}
}
