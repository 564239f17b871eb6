package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/services"
)

// DeviceUnlinker defines the interface that the service must implement.
type DeviceUnlinker interface {
	Unlink(ctx context.Context, userID uuid.UUID, deviceID string) error
}

// DeviceUnlinkResponse represents a successful device unlink response
// swagger:model DeviceUnlinkResponse
type DeviceUnlinkResponse struct {
	// Success message
	// default: Device unlinked successfully
	Message string `json:"message"`
}

// DeviceUnlinkErrorResponse represents an error response for device unlinking
// swagger:model DeviceUnlinkErrorResponse
type DeviceUnlinkErrorResponse struct {
	// Error message
	// default: Device not found for this user
	Error string `json:"error"`
}

// NewDeviceUnlinkHandler returns an HTTP handler for unlinking a device.
// @Summary Unlink a device
// @Description Revokes the authenticated user's visibility into the device. Scan records are untouched.
// @Tags user
// @Produce json
// @Param device_id path string true "Device identifier"
// @Success 200 {object} handlers.DeviceUnlinkResponse "Device unlinked"
// @Failure 401 {object} handlers.DeviceUnlinkErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.DeviceUnlinkErrorResponse "Device not linked"
// @Router /api/user/devices/{device_id} [delete]
// @Security BearerAuth
func NewDeviceUnlinkHandler(svc DeviceUnlinker, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := authenticatedUserID(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		deviceID := chi.URLParam(r, "device_id")

		if err := svc.Unlink(ctx, userID, deviceID); err != nil {
			switch {
			case errors.Is(err, services.ErrDeviceNotLinked):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeviceUnlinkErrorResponse{
					Error: "Device not found for this user",
				})
			default:
				logger.Log.Errorw("failed to unlink device", "userID", userID, "deviceID", deviceID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeviceUnlinkErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeviceUnlinkResponse{
			Message: "Device unlinked successfully",
		})
	}
}
