package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/services"
)

// AnalyticsGetter defines the interface that the service must implement.
type AnalyticsGetter interface {
	Analytics(ctx context.Context, userID uuid.UUID) (*services.AnalyticsSummary, error)
}

// AnalyticsErrorResponse represents an error response for the analytics summary
// swagger:model AnalyticsErrorResponse
type AnalyticsErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewAnalyticsSummaryHandler returns an HTTP handler for the analytics summary.
// @Summary Get analytics summary
// @Description Returns total devices, total scans, devices whose latest scan signals an issue, and the most recent scan timestamp.
// @Tags tablet
// @Produce json
// @Success 200 {object} services.AnalyticsSummary "Analytics summary"
// @Failure 401 {object} handlers.AnalyticsErrorResponse "Unauthorized"
// @Router /api/tablet/analytics/summary [get]
// @Security BearerAuth
func NewAnalyticsSummaryHandler(svc AnalyticsGetter, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := authenticatedUserID(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		summary, err := svc.Analytics(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get analytics summary", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AnalyticsErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(summary)
	}
}
