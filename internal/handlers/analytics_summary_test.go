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

func TestAnalyticsSummaryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAnalyticsGetter(ctrl)
	mockTokener := NewMockTokener(ctrl)

	userID := uuid.New()

	expectAuth := func() {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		mockTokener.EXPECT().GetUserID(gomock.Any(), "token").Return(userID, nil)
	}

	t.Run("success", func(t *testing.T) {
		last := "2026-08-30T09:30:00Z"
		expectAuth()
		mockSvc.EXPECT().Analytics(gomock.Any(), userID).Return(&services.AnalyticsSummary{
			TotalScans:        42,
			TotalDevices:      2,
			DevicesWithIssues: 1,
			LastScanTimestamp: &last,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/tablet/analytics/summary", nil)
		w := httptest.NewRecorder()

		NewAnalyticsSummaryHandler(mockSvc, mockTokener).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp services.AnalyticsSummary
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(42), resp.TotalScans)
		assert.Equal(t, 2, resp.TotalDevices)
		assert.Equal(t, 1, resp.DevicesWithIssues)
		assert.Equal(t, &last, resp.LastScanTimestamp)
	})

	t.Run("empty summary serializes null timestamp", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().Analytics(gomock.Any(), userID).Return(&services.AnalyticsSummary{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/tablet/analytics/summary", nil)
		w := httptest.NewRecorder()

		NewAnalyticsSummaryHandler(mockSvc, mockTokener).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"total_scans": 0,
			"total_devices": 0,
			"devices_with_issues": 0,
			"last_scan_timestamp": null
		}`, w.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().Analytics(gomock.Any(), userID).Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/api/tablet/analytics/summary", nil)
		w := httptest.NewRecorder()

		NewAnalyticsSummaryHandler(mockSvc, mockTokener).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
