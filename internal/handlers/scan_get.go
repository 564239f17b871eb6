package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/models"
	"github.com/xevscan/scan-api/internal/services"
)

// ScanGetter defines the interface that the service must implement.
type ScanGetter interface {
	GetScan(ctx context.Context, userID, scanID uuid.UUID) (*models.ScanRecord, error)
}

// ScanGetErrorResponse represents an error response for a scan lookup
// swagger:model ScanGetErrorResponse
type ScanGetErrorResponse struct {
	// Error message
	// default: Scan data not found
	Error string `json:"error"`
}

// NewScanGetHandler returns an HTTP handler for fetching one scan record.
// @Summary Get one scan record
// @Description Returns a single scan by id. Scans of devices the caller has not linked read as not found.
// @Tags tablet
// @Produce json
// @Param scan_id path string true "Scan identifier"
// @Success 200 {object} models.ScanRecord "Scan record"
// @Failure 401 {object} handlers.ScanGetErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ScanGetErrorResponse "Scan data not found"
// @Router /api/tablet/scan-data/{scan_id} [get]
// @Security BearerAuth
func NewScanGetHandler(svc ScanGetter, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := authenticatedUserID(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		scanID, err := uuid.Parse(chi.URLParam(r, "scan_id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ScanGetErrorResponse{
				Error: "Scan data not found",
			})
			return
		}

		record, err := svc.GetScan(ctx, userID, scanID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrScanNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ScanGetErrorResponse{
					Error: "Scan data not found",
				})
			default:
				logger.Log.Errorw("failed to get scan", "userID", userID, "scanID", scanID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ScanGetErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(record)
	}
}
