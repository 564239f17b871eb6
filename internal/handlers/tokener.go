package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/xevscan/scan-api/internal/logger"
)

// Tokener extracts and resolves bearer tokens for authenticated handlers.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

type unauthorizedResponse struct {
	Error string `json:"error"`
}

// authenticatedUserID extracts the caller's user id from the bearer token,
// writing the 401 response itself when the token is missing or invalid.
func authenticatedUserID(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	tokenGetter Tokener,
) (uuid.UUID, bool) {
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Error("unauthorized request: missing or invalid token")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(unauthorizedResponse{
			Error: "Unauthorized",
		})
		return uuid.Nil, false
	}

	userID, err := tokenGetter.GetUserID(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(unauthorizedResponse{
			Error: "Unauthorized",
		})
		return uuid.Nil, false
	}

	return userID, true
}
