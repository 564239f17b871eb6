package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xevscan/scan-api/internal/services"
)

func TestDeviceUnlinkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDeviceUnlinker(ctrl)
	mockTokener := NewMockTokener(ctrl)

	userID := uuid.New()

	expectAuth := func() {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		mockTokener.EXPECT().GetUserID(gomock.Any(), "token").Return(userID, nil)
	}

	tests := []struct {
		name         string
		deviceID     string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:     "success",
			deviceID: "OBD-001",
			mockSetup: func() {
				expectAuth()
				mockSvc.EXPECT().Unlink(gomock.Any(), userID, "OBD-001").Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &DeviceUnlinkResponse{
				Message: "Device unlinked successfully",
			},
		},
		{
			name:     "not linked",
			deviceID: "OBD-404",
			mockSetup: func() {
				expectAuth()
				mockSvc.EXPECT().
					Unlink(gomock.Any(), userID, "OBD-404").
					Return(services.ErrDeviceNotLinked)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &DeviceUnlinkErrorResponse{
				Error: "Device not found for this user",
			},
		},
		{
			name:     "internal error",
			deviceID: "OBD-001",
			mockSetup: func() {
				expectAuth()
				mockSvc.EXPECT().
					Unlink(gomock.Any(), userID, "OBD-001").
					Return(errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &DeviceUnlinkErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			router := chi.NewRouter()
			router.Delete("/api/user/devices/{device_id}", NewDeviceUnlinkHandler(mockSvc, mockTokener))

			req := httptest.NewRequest(http.MethodDelete, "/api/user/devices/"+tt.deviceID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &DeviceUnlinkResponse{}
			default:
				respBody = &DeviceUnlinkErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
