package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/models"
	"github.com/xevscan/scan-api/internal/services"
)

// DeviceLinker defines the interface that the service must implement.
type DeviceLinker interface {
	Link(ctx context.Context, userID uuid.UUID, deviceID, deviceName string) (*models.DeviceMappingDB, error)
}

// DeviceLinkRequest represents the JSON body for linking a device
// swagger:model DeviceLinkRequest
type DeviceLinkRequest struct {
	// External device identifier
	// required: true
	// default: OBD-001
	DeviceID string `json:"device_id"`

	// Human-readable label, defaults to device_id
	// default: Garage scanner
	DeviceName string `json:"device_name"`
}

// DeviceLinkResponse represents a successful device link response
// swagger:model DeviceLinkResponse
type DeviceLinkResponse struct {
	// Success message
	// default: Device linked successfully
	Message string `json:"message"`

	// Linked device identifier
	DeviceID string `json:"device_id"`
}

// DeviceLinkErrorResponse represents an error response for device linking
// swagger:model DeviceLinkErrorResponse
type DeviceLinkErrorResponse struct {
	// Error message
	// default: Device already linked to this user
	Error string `json:"error"`
}

// NewDeviceLinkHandler returns an HTTP handler for linking a device.
// @Summary Link a device
// @Description Grants the authenticated user visibility into the device's scans. Linking twice is a conflict.
// @Tags user
// @Accept json
// @Produce json
// @Param deviceLinkRequest body handlers.DeviceLinkRequest true "Device link request"
// @Success 201 {object} handlers.DeviceLinkResponse "Device linked"
// @Failure 400 {object} handlers.DeviceLinkErrorResponse "Missing device_id"
// @Failure 401 {object} handlers.DeviceLinkErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.DeviceLinkErrorResponse "Already linked"
// @Router /api/user/devices [post]
// @Security BearerAuth
func NewDeviceLinkHandler(svc DeviceLinker, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := authenticatedUserID(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		var req DeviceLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeviceLinkErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if req.DeviceID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeviceLinkErrorResponse{
				Error: "Missing required fields: device_id",
			})
			return
		}

		mapping, err := svc.Link(ctx, userID, req.DeviceID, req.DeviceName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDeviceAlreadyLinked):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(DeviceLinkErrorResponse{
					Error: "Device already linked to this user",
				})
			default:
				logger.Log.Errorw("failed to link device", "userID", userID, "deviceID", req.DeviceID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeviceLinkErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(DeviceLinkResponse{
			Message:  "Device linked successfully",
			DeviceID: mapping.DeviceID,
		})
	}
}
