package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/models"
)

type DeviceReadRepository struct {
	db *sqlx.DB
}

func NewDeviceReadRepository(db *sqlx.DB) *DeviceReadRepository {
	return &DeviceReadRepository{db: db}
}

// ListByUserID returns all device links of a user, oldest first.
func (r *DeviceReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.DeviceMappingDB, error) {
	const query = `
		SELECT id, user_id, device_id, device_name, created_at
		FROM user_device_mappings
		WHERE user_id = $1
		ORDER BY created_at
	`

	var mappings []models.DeviceMappingDB
	err := r.db.SelectContext(ctx, &mappings, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(mappings),
		"error", err,
	)

	return mappings, err
}

// DeviceIDs returns just the device ids a user owns.
func (r *DeviceReadRepository) DeviceIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const query = `
		SELECT device_id
		FROM user_device_mappings
		WHERE user_id = $1
		ORDER BY created_at
	`

	var ids []string
	err := r.db.SelectContext(ctx, &ids, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(ids),
		"error", err,
	)

	return ids, err
}

// Get returns the link for a (user, device) pair, or nil when absent.
func (r *DeviceReadRepository) Get(ctx context.Context, userID uuid.UUID, deviceID string) (*models.DeviceMappingDB, error) {
	const query = `
		SELECT id, user_id, device_id, device_name, created_at
		FROM user_device_mappings
		WHERE user_id = $1 AND device_id = $2
		LIMIT 1
	`

	var mapping models.DeviceMappingDB
	err := r.db.GetContext(ctx, &mapping, query, userID, deviceID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, deviceID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mapping, nil
}

type DeviceWriteRepository struct {
	db *sqlx.DB
}

func NewDeviceWriteRepository(db *sqlx.DB) *DeviceWriteRepository {
	return &DeviceWriteRepository{db: db}
}

// Save inserts a new device link. The composite unique index on
// (user_id, device_id) rejects duplicates even under concurrent requests.
func (r *DeviceWriteRepository) Save(ctx context.Context, m *models.DeviceMappingDB) error {
	const query = `
		INSERT INTO user_device_mappings (id, user_id, device_id, device_name, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	args := []any{m.ID, m.UserID, m.DeviceID, m.DeviceName}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes a device link and reports how many rows were removed.
// Zero rows means the pair was never linked.
func (r *DeviceWriteRepository) Delete(ctx context.Context, userID uuid.UUID, deviceID string) (int64, error) {
	const query = `
		DELETE FROM user_device_mappings
		WHERE user_id = $1 AND device_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, userID, deviceID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, deviceID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
