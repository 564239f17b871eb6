package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/models"
)

// DeviceLister defines the interface that the service must implement.
type DeviceLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.DeviceMappingDB, error)
}

// DeviceListResponse represents the caller's linked devices
// swagger:model DeviceListResponse
type DeviceListResponse struct {
	// Linked devices
	Devices []models.Device `json:"devices"`
}

// DeviceListErrorResponse represents an error response for device listing
// swagger:model DeviceListErrorResponse
type DeviceListErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewDeviceListHandler returns an HTTP handler for listing linked devices.
// @Summary List linked devices
// @Description Returns every device the authenticated user has linked.
// @Tags user
// @Produce json
// @Success 200 {object} handlers.DeviceListResponse "Linked devices"
// @Failure 401 {object} handlers.DeviceListErrorResponse "Unauthorized"
// @Router /api/user/devices [get]
// @Security BearerAuth
func NewDeviceListHandler(svc DeviceLister, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := authenticatedUserID(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		mappings, err := svc.List(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list devices", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DeviceListErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		devices := make([]models.Device, 0, len(mappings))
		for i := range mappings {
			devices = append(devices, mappings[i].Device())
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeviceListResponse{
			Devices: devices,
		})
	}
}
