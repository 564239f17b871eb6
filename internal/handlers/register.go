package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password, name string) (uuid.UUID, error)
}

// RegisterRequest represents the JSON body for account registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email address, stored lowercase
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Display name
	// required: true
	// default: John Doe
	Name string `json:"name"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully. Please check your email for verification.
	Message string `json:"message"`

	// New user id
	UserID string `json:"user_id"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: Email already registered
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for account registration.
// @Summary Register a new user
// @Description Creates an unverified account and emails a verification link. Email must be unique.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Missing or invalid fields"
// @Failure 409 {object} handlers.RegisterErrorResponse "Email already registered"
// @Router /api/auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
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
		if req.Name == "" {
			missing = append(missing, "name")
		}
		if len(missing) > 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "Missing required fields: " + strings.Join(missing, ", "),
			})
			return
		}

		userID, err := svc.Register(r.Context(), req.Email, req.Password, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidEmail):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Invalid email address",
				})
			case errors.Is(err, services.ErrEmailAlreadyRegistered):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Email already registered",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Message: "User registered successfully. Please check your email for verification.",
			UserID:  userID.String(),
		})
	}
}
