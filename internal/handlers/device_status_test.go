package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xevscan/scan-api/internal/services"
)

func TestDeviceStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDeviceStatuser(ctrl)
	mockTokener := NewMockTokener(ctrl)

	userID := uuid.New()

	expectAuth := func() {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		mockTokener.EXPECT().GetUserID(gomock.Any(), "token").Return(userID, nil)
	}

	t.Run("success", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().DeviceStatuses(gomock.Any(), userID).Return([]services.DeviceStatus{
			{DeviceID: "OBD-001", DeviceName: "Front", HealthStatus: "excellent"},
			{DeviceID: "OBD-002", DeviceName: "Back", HealthStatus: "unknown"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/tablet/device-status", nil)
		w := httptest.NewRecorder()

		NewDeviceStatusHandler(mockSvc, mockTokener).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp DeviceStatusResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Devices, 2)
		assert.Nil(t, resp.Devices[1].LatestScan)
		assert.Equal(t, "unknown", resp.Devices[1].HealthStatus)
	})

	t.Run("internal error", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().DeviceStatuses(gomock.Any(), userID).Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/api/tablet/device-status", nil)
		w := httptest.NewRecorder()

		NewDeviceStatusHandler(mockSvc, mockTokener).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
