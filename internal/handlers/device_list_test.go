package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xevscan/scan-api/internal/models"
)

func TestDeviceListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDeviceLister(ctrl)
	mockTokener := NewMockTokener(ctrl)

	userID := uuid.New()
	linked := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	expectAuth := func() {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		mockTokener.EXPECT().GetUserID(gomock.Any(), "token").Return(userID, nil)
	}

	t.Run("success", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().List(gomock.Any(), userID).Return([]models.DeviceMappingDB{
			{DeviceID: "OBD-001", DeviceName: "Front", CreatedAt: linked},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/user/devices", nil)
		w := httptest.NewRecorder()

		NewDeviceListHandler(mockSvc, mockTokener).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp DeviceListResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []models.Device{
			{DeviceID: "OBD-001", DeviceName: "Front", CreatedAt: "2026-08-01T12:00:00Z"},
		}, resp.Devices)
	})

	t.Run("empty list stays a list", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().List(gomock.Any(), userID).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/user/devices", nil)
		w := httptest.NewRecorder()

		NewDeviceListHandler(mockSvc, mockTokener).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"devices": []}`, w.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().List(gomock.Any(), userID).Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/api/user/devices", nil)
		w := httptest.NewRecorder()

		NewDeviceListHandler(mockSvc, mockTokener).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
