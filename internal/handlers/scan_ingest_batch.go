package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/models"
)

// BatchIngester defines the interface that the service must implement.
type BatchIngester interface {
	IngestBatch(ctx context.Context, items []json.RawMessage) ([]models.ScanDB, []models.BatchFailure, error)
}

// BatchIngestRequest represents the JSON body for batch ingestion
// swagger:model BatchIngestRequest
type BatchIngestRequest struct {
	// Scan payloads, validated element by element
	// required: true
	ScanData []json.RawMessage `json:"scan_data"`
}

// BatchIngestResponse summarizes a batch ingestion
// swagger:model BatchIngestResponse
type BatchIngestResponse struct {
	// Summary message
	// default: Batch processing completed. 2 successful, 1 failed.
	Message string `json:"message"`

	// Number of stored records
	SuccessfulRecords int `json:"successful_records"`

	// Number of rejected records
	FailedRecords int `json:"failed_records"`

	// Rejected elements with their index and reason
	Failures []models.BatchFailure `json:"failures"`
}

// BatchIngestErrorResponse represents an error response for batch ingestion
// swagger:model BatchIngestErrorResponse
type BatchIngestErrorResponse struct {
	// Error message
	// default: scan_data array is required
	Error string `json:"error"`
}

// NewScanIngestBatchHandler returns an HTTP handler for batch scan ingestion.
// @Summary Ingest scan records in batch
// @Description Validates each element independently; valid records are stored in one transaction and invalid ones reported per index. A storage failure aborts the whole batch.
// @Tags external
// @Accept json
// @Produce json
// @Param batchRequest body handlers.BatchIngestRequest true "Batch of scan payloads"
// @Success 201 {object} handlers.BatchIngestResponse "Batch processed"
// @Failure 400 {object} handlers.BatchIngestErrorResponse "scan_data array missing"
// @Failure 429 {object} handlers.BatchIngestErrorResponse "Rate limit exceeded"
// @Router /api/external/scan-data/batch [post]
func NewScanIngestBatchHandler(svc BatchIngester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BatchIngestRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.ScanData) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BatchIngestErrorResponse{
				Error: "scan_data array is required",
			})
			return
		}

		accepted, failures, err := svc.IngestBatch(r.Context(), req.ScanData)
		if err != nil {
			logger.Log.Errorw("failed to ingest scan batch", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BatchIngestErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(BatchIngestResponse{
			Message: fmt.Sprintf(
				"Batch processing completed. %d successful, %d failed.",
				len(accepted), len(failures),
			),
			SuccessfulRecords: len(accepted),
			FailedRecords:     len(failures),
			Failures:          failures,
		})
	}
}
