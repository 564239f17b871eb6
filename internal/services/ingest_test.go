package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xevscan/scan-api/internal/models"
	"github.com/xevscan/scan-api/internal/services"
)

func TestIngestService_Ingest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockScanWriter(ctrl)

	svc := services.NewIngestService(mockWriter, nil)

	t.Run("successful ingest", func(t *testing.T) {
		var saved *models.ScanDB
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, scan *models.ScanDB) error {
				saved = scan
				return nil
			})

		soh := 85.5
		payload := &models.ScanPayload{
			DeviceID:      "OBD-001",
			ScanTimestamp: "2026-08-30T10:00:00",
			Battery:       &models.Battery{SoH: &soh},
		}

		scan, err := svc.Ingest(context.Background(), payload)
		assert.NoError(t, err)
		assert.NotNil(t, saved)
		assert.Equal(t, saved, scan)
		assert.NotEqual(t, uuid.Nil, scan.ID)
		assert.Equal(t, "OBD-001", scan.DeviceID)
		assert.Equal(t, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC), scan.ScanTimestamp)
		assert.Equal(t, 85.5, *scan.BatterySoH)
		assert.NotNil(t, scan.AdditionalData)
	})

	t.Run("malformed timestamp falls back to ingestion time", func(t *testing.T) {
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		before := time.Now().UTC()
		scan, err := svc.Ingest(context.Background(), &models.ScanPayload{
			DeviceID:      "OBD-001",
			ScanTimestamp: "yesterday-ish",
		})
		assert.NoError(t, err)
		assert.False(t, scan.ScanTimestamp.Before(before))
	})

	t.Run("missing device id", func(t *testing.T) {
		_, err := svc.Ingest(context.Background(), &models.ScanPayload{DeviceID: "  "})
		assert.ErrorIs(t, err, services.ErrDeviceIDRequired)
	})

	t.Run("save error", func(t *testing.T) {
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		_, err := svc.Ingest(context.Background(), &models.ScanPayload{DeviceID: "OBD-001"})
		assert.Error(t, err)
	})
}

func TestIngestService_IngestBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockScanWriter(ctrl)

	svc := services.NewIngestService(mockWriter, nil)

	t.Run("mixed batch reports failures by index", func(t *testing.T) {
		mockWriter.EXPECT().
			SaveBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, scans []models.ScanDB) error {
				assert.Len(t, scans, 2)
				return nil
			})

		items := []json.RawMessage{
			json.RawMessage(`{"device_id": "OBD-001"}`),
			json.RawMessage(`{"battery": {}}`),
			json.RawMessage(`"not an object"`),
			json.RawMessage(`{"device_id": "OBD-002", "scan_timestamp": "2026-08-30T10:00:00Z"}`),
		}

		accepted, failures, err := svc.IngestBatch(context.Background(), items)
		assert.NoError(t, err)
		assert.Len(t, accepted, 2)
		assert.Equal(t, "OBD-001", accepted[0].DeviceID)
		assert.Equal(t, "OBD-002", accepted[1].DeviceID)
		assert.Equal(t, []models.BatchFailure{
			{Index: 1, Error: "device_id is required"},
			{Index: 2, Error: "invalid scan payload"},
		}, failures)
	})

	t.Run("mistyped optional field does not reject the record", func(t *testing.T) {
		mockWriter.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Return(nil)

		items := []json.RawMessage{
			json.RawMessage(`{"device_id": "OBD-001", "battery": {"soh": "not a number"}}`),
		}

		accepted, failures, err := svc.IngestBatch(context.Background(), items)
		assert.NoError(t, err)
		assert.Len(t, accepted, 1)
		assert.Empty(t, failures)
		assert.Nil(t, accepted[0].BatterySoH)
	})

	t.Run("all invalid skips storage", func(t *testing.T) {
		items := []json.RawMessage{
			json.RawMessage(`{"battery": {}}`),
			json.RawMessage(`[1, 2, 3]`),
		}

		accepted, failures, err := svc.IngestBatch(context.Background(), items)
		assert.NoError(t, err)
		assert.Empty(t, accepted)
		assert.Len(t, failures, 2)
	})

	t.Run("storage failure aborts the batch", func(t *testing.T) {
		mockWriter.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		items := []json.RawMessage{
			json.RawMessage(`{"device_id": "OBD-001"}`),
		}

		_, _, err := svc.IngestBatch(context.Background(), items)
		assert.Error(t, err)
	})
}
