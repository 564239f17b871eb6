package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/services"
)

// DeviceStatuser defines the interface that the service must implement.
type DeviceStatuser interface {
	DeviceStatuses(ctx context.Context, userID uuid.UUID) ([]services.DeviceStatus, error)
}

// DeviceStatusResponse represents the latest state of every linked device
// swagger:model DeviceStatusResponse
type DeviceStatusResponse struct {
	// Per-device latest scan and health verdict
	Devices []services.DeviceStatus `json:"devices"`
}

// DeviceStatusErrorResponse represents an error response for device status
// swagger:model DeviceStatusErrorResponse
type DeviceStatusErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewDeviceStatusHandler returns an HTTP handler for the device status view.
// @Summary Get device statuses
// @Description Returns the latest scan and health verdict for every device the caller has linked. Devices without scans appear with a null latest scan.
// @Tags tablet
// @Produce json
// @Success 200 {object} handlers.DeviceStatusResponse "Device statuses"
// @Failure 401 {object} handlers.DeviceStatusErrorResponse "Unauthorized"
// @Router /api/tablet/device-status [get]
// @Security BearerAuth
func NewDeviceStatusHandler(svc DeviceStatuser, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := authenticatedUserID(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		statuses, err := svc.DeviceStatuses(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get device statuses", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DeviceStatusErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeviceStatusResponse{
			Devices: statuses,
		})
	}
}
