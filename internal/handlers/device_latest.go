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

// LatestScanGetter defines the interface that the service must implement.
type LatestScanGetter interface {
	LatestForDevice(ctx context.Context, userID uuid.UUID, deviceID string) (*models.ScanRecord, error)
}

// DeviceLatestErrorResponse represents an error response for the latest-scan lookup
// swagger:model DeviceLatestErrorResponse
type DeviceLatestErrorResponse struct {
	// Error message
	// default: Device not accessible by this user
	Error string `json:"error"`
}

// NewDeviceLatestHandler returns an HTTP handler for a device's latest scan.
// @Summary Get latest scan for a device
// @Description Returns the most recent scan of one device. Unlike scan lookups by id, asking about an unlinked device is forbidden rather than hidden.
// @Tags tablet
// @Produce json
// @Param device_id path string true "Device identifier"
// @Success 200 {object} models.ScanRecord "Latest scan"
// @Failure 401 {object} handlers.DeviceLatestErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.DeviceLatestErrorResponse "Device not accessible"
// @Failure 404 {object} handlers.DeviceLatestErrorResponse "No scan data"
// @Router /api/tablet/device/{device_id}/latest [get]
// @Security BearerAuth
func NewDeviceLatestHandler(svc LatestScanGetter, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := authenticatedUserID(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		deviceID := chi.URLParam(r, "device_id")

		record, err := svc.LatestForDevice(ctx, userID, deviceID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDeviceNotAccessible):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(DeviceLatestErrorResponse{
					Error: "Device not accessible by this user",
				})
			case errors.Is(err, services.ErrNoScanData):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeviceLatestErrorResponse{
					Error: "No scan data found for this device",
				})
			default:
				logger.Log.Errorw("failed to get latest scan", "userID", userID, "deviceID", deviceID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeviceLatestErrorResponse{
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
