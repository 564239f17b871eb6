package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/models"
	"github.com/xevscan/scan-api/internal/services"
)

// ScanIngester defines the interface that the service must implement.
type ScanIngester interface {
	Ingest(ctx context.Context, p *models.ScanPayload) (*models.ScanDB, error)
}

// ScanIngestResponse represents a successful single ingestion response
// swagger:model ScanIngestResponse
type ScanIngestResponse struct {
	// Success message
	// default: Scan data received successfully
	Message string `json:"message"`

	// Stored scan identifier
	ScanID string `json:"scan_id"`
}

// ScanIngestErrorResponse represents an error response for ingestion
// swagger:model ScanIngestErrorResponse
type ScanIngestErrorResponse struct {
	// Error message
	// default: device_id is required
	Error string `json:"error"`
}

// NewScanIngestHandler returns an HTTP handler for single scan ingestion.
// @Summary Ingest one scan record
// @Description Accepts a diagnostic scan from an external scanner. Only device_id is required; mistyped optional fields are dropped, a malformed scan_timestamp falls back to ingestion time.
// @Tags external
// @Accept json
// @Produce json
// @Param scanPayload body models.ScanPayload true "Scan payload"
// @Success 201 {object} handlers.ScanIngestResponse "Scan stored"
// @Failure 400 {object} handlers.ScanIngestErrorResponse "Invalid payload"
// @Failure 429 {object} handlers.ScanIngestErrorResponse "Rate limit exceeded"
// @Router /api/external/scan-data [post]
func NewScanIngestHandler(svc ScanIngester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ScanIngestErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		payload, err := models.DecodeScanPayload(body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ScanIngestErrorResponse{
				Error: "Invalid JSON payload",
			})
			return
		}

		scan, err := svc.Ingest(r.Context(), payload)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDeviceIDRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ScanIngestErrorResponse{
					Error: "device_id is required",
				})
			default:
				logger.Log.Errorw("failed to ingest scan", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ScanIngestErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ScanIngestResponse{
			Message: "Scan data received successfully",
			ScanID:  scan.ID.String(),
		})
	}
}
