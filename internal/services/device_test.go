package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xevscan/scan-api/internal/models"
	"github.com/xevscan/scan-api/internal/services"
)

func TestDeviceService_Link(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockDeviceReader(ctrl)
	mockWriter := services.NewMockDeviceWriter(ctrl)

	svc := services.NewDeviceService(mockReader, mockWriter)

	userID := uuid.New()

	tests := []struct {
		name       string
		deviceID   string
		deviceName string
		existing   *models.DeviceMappingDB
		readerErr  error
		writerErr  error
		wantErr    error
		wantName   string
	}{
		{
			name:       "successful link",
			deviceID:   "OBD-001",
			deviceName: "Garage scanner",
			wantName:   "Garage scanner",
		},
		{
			name:     "name defaults to device id",
			deviceID: "OBD-002",
			wantName: "OBD-002",
		},
		{
			name:     "already linked",
			deviceID: "OBD-003",
			existing: &models.DeviceMappingDB{ID: uuid.New(), UserID: userID, DeviceID: "OBD-003"},
			wantErr:  services.ErrDeviceAlreadyLinked,
		},
		{
			name:      "reader error",
			deviceID:  "OBD-004",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			deviceID:  "OBD-005",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				Get(gomock.Any(), userID, tt.deviceID).
				Return(tt.existing, tt.readerErr)

			if tt.existing == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(tt.writerErr)
			}

			mapping, err := svc.Link(context.Background(), userID, tt.deviceID, tt.deviceName)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, mapping)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.deviceID, mapping.DeviceID)
				assert.Equal(t, tt.wantName, mapping.DeviceName)
				assert.Equal(t, userID, mapping.UserID)
			}
		})
	}
}

func TestDeviceService_Unlink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockDeviceReader(ctrl)
	mockWriter := services.NewMockDeviceWriter(ctrl)

	svc := services.NewDeviceService(mockReader, mockWriter)

	userID := uuid.New()

	tests := []struct {
		name      string
		deviceID  string
		deleted   int64
		writerErr error
		wantErr   error
	}{
		{
			name:     "successful unlink",
			deviceID: "OBD-001",
			deleted:  1,
		},
		{
			name:     "device not linked",
			deviceID: "OBD-404",
			deleted:  0,
			wantErr:  services.ErrDeviceNotLinked,
		},
		{
			name:      "writer error",
			deviceID:  "OBD-001",
			writerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter.EXPECT().
				Delete(gomock.Any(), userID, tt.deviceID).
				Return(tt.deleted, tt.writerErr)

			err := svc.Unlink(context.Background(), userID, tt.deviceID)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeviceService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockDeviceReader(ctrl)
	mockWriter := services.NewMockDeviceWriter(ctrl)

	svc := services.NewDeviceService(mockReader, mockWriter)

	userID := uuid.New()
	mappings := []models.DeviceMappingDB{
		{ID: uuid.New(), UserID: userID, DeviceID: "OBD-001", DeviceName: "Front"},
		{ID: uuid.New(), UserID: userID, DeviceID: "OBD-002", DeviceName: "Back"},
	}

	t.Run("successful list", func(t *testing.T) {
		mockReader.EXPECT().ListByUserID(gomock.Any(), userID).Return(mappings, nil)

		got, err := svc.List(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, mappings, got)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().ListByUserID(gomock.Any(), userID).Return(nil, errors.New("db error"))

		_, err := svc.List(context.Background(), userID)
		assert.Error(t, err)
	})
}
