package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/services"
)

// Verifier defines the interface that the service must implement.
type Verifier interface {
	Verify(ctx context.Context, token string) error
}

// VerifyResponse represents a successful verification response
// swagger:model VerifyResponse
type VerifyResponse struct {
	// Success message
	// default: Email verified successfully
	Message string `json:"message"`
}

// VerifyErrorResponse represents an error response for verification
// swagger:model VerifyErrorResponse
type VerifyErrorResponse struct {
	// Error message
	// default: Invalid verification token
	Error string `json:"error"`
}

// NewVerifyHandler returns an HTTP handler for email verification.
// @Summary Verify an email address
// @Description Consumes a single-use verification token; the account can log in afterwards.
// @Tags auth
// @Produce json
// @Param token path string true "Verification token"
// @Success 200 {object} handlers.VerifyResponse "Email verified"
// @Failure 400 {object} handlers.VerifyErrorResponse "Invalid verification token"
// @Router /api/auth/verify/{token} [get]
func NewVerifyHandler(svc Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "token")

		if err := svc.Verify(r.Context(), token); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidVerificationToken):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(VerifyErrorResponse{
					Error: "Invalid verification token",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(VerifyErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VerifyResponse{
			Message: "Email verified successfully",
		})
	}
}
