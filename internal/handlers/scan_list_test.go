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
	"github.com/xevscan/scan-api/internal/models"
	"github.com/xevscan/scan-api/internal/services"
)

func TestScanListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockScanLister(ctrl)
	mockTokener := NewMockTokener(ctrl)

	userID := uuid.New()

	expectAuth := func() {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		mockTokener.EXPECT().GetUserID(gomock.Any(), "token").Return(userID, nil)
	}

	t.Run("query parameters are forwarded", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().
			ListScans(gomock.Any(), userID, services.ScanListRequest{
				DeviceID:  "OBD-001",
				StartDate: "2026-08-01T00:00:00Z",
				EndDate:   "2026-08-31T00:00:00Z",
				Limit:     50,
				Offset:    10,
			}).
			Return(&services.ScanPage{
				Scans:   []models.ScanRecord{},
				Total:   120,
				Limit:   50,
				Offset:  10,
				HasMore: true,
			}, nil)

		req := httptest.NewRequest(http.MethodGet,
			"/api/tablet/scan-data?device_id=OBD-001&start_date=2026-08-01T00:00:00Z&end_date=2026-08-31T00:00:00Z&limit=50&offset=10",
			nil)
		w := httptest.NewRecorder()

		NewScanListHandler(mockSvc, mockTokener).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp ScanListResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(120), resp.TotalCount)
		assert.Equal(t, 50, resp.Limit)
		assert.Equal(t, 10, resp.Offset)
		assert.True(t, resp.HasMore)
		assert.NotNil(t, resp.ScanData)
	})

	t.Run("invalid start_date", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().
			ListScans(gomock.Any(), userID, gomock.Any()).
			Return(nil, services.ErrInvalidStartDate)

		req := httptest.NewRequest(http.MethodGet, "/api/tablet/scan-data?start_date=nope", nil)
		w := httptest.NewRecorder()

		NewScanListHandler(mockSvc, mockTokener).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ScanListErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid start_date format. Use ISO format.", resp.Error)
	})

	t.Run("invalid end_date", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().
			ListScans(gomock.Any(), userID, gomock.Any()).
			Return(nil, services.ErrInvalidEndDate)

		req := httptest.NewRequest(http.MethodGet, "/api/tablet/scan-data?end_date=nope", nil)
		w := httptest.NewRecorder()

		NewScanListHandler(mockSvc, mockTokener).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ScanListErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid end_date format. Use ISO format.", resp.Error)
	})

	t.Run("unauthorized", func(t *testing.T) {
		mockTokener.EXPECT().
			GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("", errors.New("no token"))

		req := httptest.NewRequest(http.MethodGet, "/api/tablet/scan-data", nil)
		w := httptest.NewRecorder()

		NewScanListHandler(mockSvc, mockTokener).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().
			ListScans(gomock.Any(), userID, gomock.Any()).
			Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/api/tablet/scan-data", nil)
		w := httptest.NewRecorder()

		NewScanListHandler(mockSvc, mockTokener).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
