package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/models"
	"github.com/xevscan/scan-api/internal/services"
)

// ScanLister defines the interface that the service must implement.
type ScanLister interface {
	ListScans(ctx context.Context, userID uuid.UUID, req services.ScanListRequest) (*services.ScanPage, error)
}

// ScanListResponse represents one page of scan records
// swagger:model ScanListResponse
type ScanListResponse struct {
	// Scan records, newest first, each with its health verdict
	ScanData []models.ScanRecord `json:"scan_data"`

	// Total records matching the filter
	TotalCount int64 `json:"total_count"`

	// Page size applied
	Limit int `json:"limit"`

	// Page offset applied
	Offset int `json:"offset"`

	// Whether more records exist past this page
	HasMore bool `json:"has_more"`
}

// ScanListErrorResponse represents an error response for scan listing
// swagger:model ScanListErrorResponse
type ScanListErrorResponse struct {
	// Error message
	// default: Invalid start_date format. Use ISO format.
	Error string `json:"error"`
}

// NewScanListHandler returns an HTTP handler for the scoped scan listing.
// @Summary List scan records
// @Description Returns scans of the caller's linked devices, newest first. Supports device_id, start_date, end_date, limit (max 1000) and offset query parameters.
// @Tags tablet
// @Produce json
// @Param device_id query string false "Restrict to one owned device"
// @Param start_date query string false "ISO timestamp lower bound"
// @Param end_date query string false "ISO timestamp upper bound"
// @Param limit query int false "Page size, default 100, max 1000"
// @Param offset query int false "Page offset"
// @Success 200 {object} handlers.ScanListResponse "One page of scans"
// @Failure 400 {object} handlers.ScanListErrorResponse "Malformed date filter"
// @Failure 401 {object} handlers.ScanListErrorResponse "Unauthorized"
// @Router /api/tablet/scan-data [get]
// @Security BearerAuth
func NewScanListHandler(svc ScanLister, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := authenticatedUserID(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		q := r.URL.Query()
		req := services.ScanListRequest{
			DeviceID:  q.Get("device_id"),
			StartDate: q.Get("start_date"),
			EndDate:   q.Get("end_date"),
		}
		if v := q.Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				req.Limit = n
			}
		}
		if v := q.Get("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				req.Offset = n
			}
		}

		page, err := svc.ListScans(ctx, userID, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidStartDate):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ScanListErrorResponse{
					Error: "Invalid start_date format. Use ISO format.",
				})
			case errors.Is(err, services.ErrInvalidEndDate):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ScanListErrorResponse{
					Error: "Invalid end_date format. Use ISO format.",
				})
			default:
				logger.Log.Errorw("failed to list scans", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ScanListErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ScanListResponse{
			ScanData:   page.Scans,
			TotalCount: page.Total,
			Limit:      page.Limit,
			Offset:     page.Offset,
			HasMore:    page.HasMore,
		})
	}
}
