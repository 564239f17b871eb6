package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xevscan/scan-api/internal/models"
	"github.com/xevscan/scan-api/internal/services"
)

func TestDeviceLinkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDeviceLinker(ctrl)
	mockTokener := NewMockTokener(ctrl)

	userID := uuid.New()

	expectAuth := func() {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		mockTokener.EXPECT().GetUserID(gomock.Any(), "token").Return(userID, nil)
	}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: DeviceLinkRequest{
				DeviceID:   "OBD-001",
				DeviceName: "Garage scanner",
			},
			mockSetup: func() {
				expectAuth()
				mockSvc.EXPECT().
					Link(gomock.Any(), userID, "OBD-001", "Garage scanner").
					Return(&models.DeviceMappingDB{
						ID:       uuid.New(),
						UserID:   userID,
						DeviceID: "OBD-001",
					}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &DeviceLinkResponse{
				Message:  "Device linked successfully",
				DeviceID: "OBD-001",
			},
		},
		{
			name:      "invalid JSON",
			inputBody: "{invalid json}",
			mockSetup: func() {
				expectAuth()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &DeviceLinkErrorResponse{
				Error: "Invalid request body",
			},
		},
		{
			name:      "missing device_id",
			inputBody: DeviceLinkRequest{DeviceName: "Garage scanner"},
			mockSetup: func() {
				expectAuth()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &DeviceLinkErrorResponse{
				Error: "Missing required fields: device_id",
			},
		},
		{
			name:      "already linked",
			inputBody: DeviceLinkRequest{DeviceID: "OBD-001"},
			mockSetup: func() {
				expectAuth()
				mockSvc.EXPECT().
					Link(gomock.Any(), userID, "OBD-001", "").
					Return(nil, services.ErrDeviceAlreadyLinked)
			},
			expectedCode: http.StatusConflict,
			expectedBody: &DeviceLinkErrorResponse{
				Error: "Device already linked to this user",
			},
		},
		{
			name:      "unauthorized",
			inputBody: DeviceLinkRequest{DeviceID: "OBD-001"},
			mockSetup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &DeviceLinkErrorResponse{
				Error: "Unauthorized",
			},
		},
		{
			name:      "internal error",
			inputBody: DeviceLinkRequest{DeviceID: "OBD-001"},
			mockSetup: func() {
				expectAuth()
				mockSvc.EXPECT().
					Link(gomock.Any(), userID, "OBD-001", "").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &DeviceLinkErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/user/devices", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewDeviceLinkHandler(mockSvc, mockTokener)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusCreated:
				respBody = &DeviceLinkResponse{}
			default:
				respBody = &DeviceLinkErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
