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

// Profiler defines the interface that the service must implement.
type Profiler interface {
	Profile(ctx context.Context, userID uuid.UUID) (models.UserProfile, error)
}

// ProfileErrorResponse represents an error response for the profile endpoint
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewProfileHandler returns an HTTP handler for the caller's own profile.
// @Summary Get current user profile
// @Description Returns the authenticated user's account with linked device ids.
// @Tags user
// @Produce json
// @Success 200 {object} models.UserProfile "User profile"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ProfileErrorResponse "User not found"
// @Router /api/user/profile [get]
// @Security BearerAuth
func NewProfileHandler(svc Profiler, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := authenticatedUserID(ctx, w, r, tokenGetter)
		if !ok {
			return
		}

		profile, err := svc.Profile(ctx, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("failed to get profile", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}
