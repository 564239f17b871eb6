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
	"github.com/xevscan/scan-api/internal/models"
	"github.com/xevscan/scan-api/internal/services"
)

func TestDeviceLatestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLatestScanGetter(ctrl)
	mockTokener := NewMockTokener(ctrl)

	userID := uuid.New()

	expectAuth := func() {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		mockTokener.EXPECT().GetUserID(gomock.Any(), "token").Return(userID, nil)
	}

	serve := func(deviceID string) *httptest.ResponseRecorder {
		router := chi.NewRouter()
		router.Get("/api/tablet/device/{device_id}/latest", NewDeviceLatestHandler(mockSvc, mockTokener))
		req := httptest.NewRequest(http.MethodGet, "/api/tablet/device/"+deviceID+"/latest", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("success", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().
			LatestForDevice(gomock.Any(), userID, "OBD-001").
			Return(&models.ScanRecord{ID: uuid.New().String(), DeviceID: "OBD-001", HealthStatus: "excellent"}, nil)

		w := serve("OBD-001")

		assert.Equal(t, http.StatusOK, w.Code)

		var resp models.ScanRecord
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "OBD-001", resp.DeviceID)
	})

	t.Run("not accessible", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().
			LatestForDevice(gomock.Any(), userID, "OBD-999").
			Return(nil, services.ErrDeviceNotAccessible)

		w := serve("OBD-999")

		assert.Equal(t, http.StatusForbidden, w.Code)

		var resp DeviceLatestErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Device not accessible by this user", resp.Error)
	})

	t.Run("no scan data", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().
			LatestForDevice(gomock.Any(), userID, "OBD-001").
			Return(nil, services.ErrNoScanData)

		w := serve("OBD-001")

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp DeviceLatestErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "No scan data found for this device", resp.Error)
	})

	t.Run("internal error", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().
			LatestForDevice(gomock.Any(), userID, "OBD-001").
			Return(nil, errors.New("database error"))

		w := serve("OBD-001")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
