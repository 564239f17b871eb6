package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/models"
)

var (
	ErrDeviceAlreadyLinked = errors.New("device already linked to this user")
	ErrDeviceNotLinked     = errors.New("device not found for this user")
)

// DeviceReader defines read operations for device ownership.
type DeviceReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.DeviceMappingDB, error)
	DeviceIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
	Get(ctx context.Context, userID uuid.UUID, deviceID string) (*models.DeviceMappingDB, error)
}

// DeviceWriter defines write operations for device ownership.
type DeviceWriter interface {
	Save(ctx context.Context, m *models.DeviceMappingDB) error
	Delete(ctx context.Context, userID uuid.UUID, deviceID string) (int64, error)
}

// DeviceService manages the user-to-device ownership registry. Ownership is
// purely additive and per-user: several users may link the same device.
type DeviceService struct {
	reader DeviceReader
	writer DeviceWriter
}

// NewDeviceService creates a new DeviceService instance.
func NewDeviceService(reader DeviceReader, writer DeviceWriter) *DeviceService {
	return &DeviceService{
		reader: reader,
		writer: writer,
	}
}

// Link grants the user visibility into a device's scans. Linking an already
// linked pair is a conflict, not an update.
func (svc *DeviceService) Link(ctx context.Context, userID uuid.UUID, deviceID, deviceName string) (*models.DeviceMappingDB, error) {
	existing, err := svc.reader.Get(ctx, userID, deviceID)
	if err != nil {
		logger.Log.Errorw("failed to check device link", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDeviceAlreadyLinked
	}

	if deviceName == "" {
		deviceName = deviceID
	}

	mapping := &models.DeviceMappingDB{
		ID:         uuid.New(),
		UserID:     userID,
		DeviceID:   deviceID,
		DeviceName: deviceName,
	}

	if err := svc.writer.Save(ctx, mapping); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDeviceAlreadyLinked
		}
		logger.Log.Errorw("failed to save device link", "err", err)
		return nil, err
	}

	return mapping, nil
}

// Unlink revokes the user's visibility into the device. The device's scans
// are untouched; re-linking later creates a fresh grant.
func (svc *DeviceService) Unlink(ctx context.Context, userID uuid.UUID, deviceID string) error {
	deleted, err := svc.writer.Delete(ctx, userID, deviceID)
	if err != nil {
		logger.Log.Errorw("failed to delete device link", "err", err)
		return err
	}
	if deleted == 0 {
		return ErrDeviceNotLinked
	}
	return nil
}

// List returns all devices linked to the user.
func (svc *DeviceService) List(ctx context.Context, userID uuid.UUID) ([]models.DeviceMappingDB, error) {
	mappings, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list device links", "err", err)
		return nil, err
	}
	return mappings, nil
}
