package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/xevscan/scan-api/internal/services"
)

func TestVerifyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVerifier(ctrl)

	tests := []struct {
		name         string
		token        string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:  "success",
			token: "valid-token",
			mockSetup: func() {
				mockSvc.EXPECT().
					Verify(gomock.Any(), "valid-token").
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &VerifyResponse{
				Message: "Email verified successfully",
			},
		},
		{
			name:  "invalid token",
			token: "bogus",
			mockSetup: func() {
				mockSvc.EXPECT().
					Verify(gomock.Any(), "bogus").
					Return(services.ErrInvalidVerificationToken)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &VerifyErrorResponse{
				Error: "Invalid verification token",
			},
		},
		{
			name:  "internal error",
			token: "valid-token",
			mockSetup: func() {
				mockSvc.EXPECT().
					Verify(gomock.Any(), "valid-token").
					Return(errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &VerifyErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			router := chi.NewRouter()
			router.Get("/api/auth/verify/{token}", NewVerifyHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/api/auth/verify/"+tt.token, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &VerifyResponse{}
			default:
				respBody = &VerifyErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
