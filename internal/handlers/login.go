package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/models"
	"github.com/xevscan/scan-api/internal/services"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, models.UserProfile, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email address
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT bearer token
	AccessToken string `json:"access_token"`

	// Authenticated user profile
	User models.UserProfile `json:"user"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// default: Invalid credentials
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Authenticate a user
// @Description Verifies credentials and returns a JWT access token with the user profile. Unverified accounts cannot log in.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "User login request"
// @Success 200 {object} handlers.LoginResponse "Authenticated"
// @Failure 400 {object} handlers.LoginErrorResponse "Missing fields"
// @Failure 401 {object} handlers.LoginErrorResponse "Invalid credentials or unverified email"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		var missing []string
		if req.Email == "" {
			missing = append(missing, "email")
		}
		if req.Password == "" {
			missing = append(missing, "password")
		}
		if len(missing) > 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "Missing required fields: " + strings.Join(missing, ", "),
			})
			return
		}

		token, profile, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Invalid credentials",
				})
			case errors.Is(err, services.ErrEmailNotVerified):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Please verify your email first",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			AccessToken: token,
			User:        profile,
		})
	}
}
