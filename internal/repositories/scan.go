package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/models"
)

const scanColumns = `id, device_id, scan_timestamp,
	battery_total_operation_time, battery_soh, battery_soc, battery_charge_discharge_cycles,
	battery_estimated_range, battery_cell_voltage_deviation, battery_temperature_sensor_status,
	battery_temperature, battery_case_status, battery_hv_cable_status,
	motor_torque_value, motor_status, motor_short_open_status, motor_insulation_resistance, motor_surge_test,
	decelerator_status, decelerator_torque_rpm, decelerator_noise_level, decelerator_oil_leak,
	obc_status, bms_status,
	epcu_inverter_status, epcu_ldc_status, epcu_vcu_status,
	additional_data, created_at`

const scanInsert = `
	INSERT INTO ev_scan_data (` + scanColumns + `)
	VALUES (:id, :device_id, :scan_timestamp,
		:battery_total_operation_time, :battery_soh, :battery_soc, :battery_charge_discharge_cycles,
		:battery_estimated_range, :battery_cell_voltage_deviation, :battery_temperature_sensor_status,
		:battery_temperature, :battery_case_status, :battery_hv_cable_status,
		:motor_torque_value, :motor_status, :motor_short_open_status, :motor_insulation_resistance, :motor_surge_test,
		:decelerator_status, :decelerator_torque_rpm, :decelerator_noise_level, :decelerator_oil_leak,
		:obc_status, :bms_status,
		:epcu_inverter_status, :epcu_ldc_status, :epcu_vcu_status,
		:additional_data, :created_at)
`

// ScanFilter narrows a scoped scan listing. DeviceIDs is the caller's owned
// set and is always required; the other fields are optional.
type ScanFilter struct {
	DeviceIDs []string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

type ScanReadRepository struct {
	db *sqlx.DB
}

func NewScanReadRepository(db *sqlx.DB) *ScanReadRepository {
	return &ScanReadRepository{db: db}
}

// List returns one page of scan records, newest first, together with the
// total number of records matching the filter.
func (r *ScanReadRepository) List(ctx context.Context, f ScanFilter) ([]models.ScanDB, int64, error) {
	conds := []string{"device_id IN (?)"}
	args := []any{f.DeviceIDs}
	if f.StartDate != nil {
		conds = append(conds, "scan_timestamp >= ?")
		args = append(args, *f.StartDate)
	}
	if f.EndDate != nil {
		conds = append(conds, "scan_timestamp <= ?")
		args = append(args, *f.EndDate)
	}
	where := strings.Join(conds, " AND ")

	countQuery, countArgs, err := sqlx.In("SELECT COUNT(*) FROM ev_scan_data WHERE "+where, args...)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	err = r.db.GetContext(ctx, &total, r.db.Rebind(countQuery), countArgs...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(countQuery), " "),
		"result", total,
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}

	listQuery, listArgs, err := sqlx.In(
		"SELECT "+scanColumns+" FROM ev_scan_data WHERE "+where+
			" ORDER BY scan_timestamp DESC LIMIT ? OFFSET ?",
		append(args, f.Limit, f.Offset)...,
	)
	if err != nil {
		return nil, 0, err
	}

	var scans []models.ScanDB
	err = r.db.SelectContext(ctx, &scans, r.db.Rebind(listQuery), listArgs...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(listQuery), " "),
		"result", len(scans),
		"error", err,
	)

	return scans, total, err
}

// GetByID returns the scan with the given id when it belongs to one of the
// given devices; nil otherwise. Out-of-scope ids are indistinguishable from
// nonexistent ones.
func (r *ScanReadRepository) GetByID(ctx context.Context, id uuid.UUID, deviceIDs []string) (*models.ScanDB, error) {
	query, args, err := sqlx.In(
		"SELECT "+scanColumns+" FROM ev_scan_data WHERE id = ? AND device_id IN (?) LIMIT 1",
		id, deviceIDs,
	)
	if err != nil {
		return nil, err
	}

	var scan models.ScanDB
	err = r.db.GetContext(ctx, &scan, r.db.Rebind(query), args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, deviceIDs},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &scan, nil
}

// LatestByDeviceIDs returns the most recent scan per device for every device
// in the list that has at least one scan.
func (r *ScanReadRepository) LatestByDeviceIDs(ctx context.Context, deviceIDs []string) ([]models.ScanDB, error) {
	query, args, err := sqlx.In(
		"SELECT DISTINCT ON (device_id) "+scanColumns+
			" FROM ev_scan_data WHERE device_id IN (?) ORDER BY device_id, scan_timestamp DESC",
		deviceIDs,
	)
	if err != nil {
		return nil, err
	}

	var scans []models.ScanDB
	err = r.db.SelectContext(ctx, &scans, r.db.Rebind(query), args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{deviceIDs},
		"result", len(scans),
		"error", err,
	)

	return scans, err
}

// LatestByDevice returns the most recent scan of one device, or nil when the
// device has no scans.
func (r *ScanReadRepository) LatestByDevice(ctx context.Context, deviceID string) (*models.ScanDB, error) {
	const query = `
		SELECT ` + scanColumns + `
		FROM ev_scan_data
		WHERE device_id = $1
		ORDER BY scan_timestamp DESC
		LIMIT 1
	`

	var scan models.ScanDB
	err := r.db.GetContext(ctx, &scan, query, deviceID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{deviceID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &scan, nil
}

// CountByDeviceIDs returns the total number of scans across the given devices.
func (r *ScanReadRepository) CountByDeviceIDs(ctx context.Context, deviceIDs []string) (int64, error) {
	query, args, err := sqlx.In("SELECT COUNT(*) FROM ev_scan_data WHERE device_id IN (?)", deviceIDs)
	if err != nil {
		return 0, err
	}

	var total int64
	err = r.db.GetContext(ctx, &total, r.db.Rebind(query), args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{deviceIDs},
		"result", total,
		"error", err,
	)

	return total, err
}

// ScanWriteRepository handles scan inserts
type ScanWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewScanWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ScanWriteRepository {
	return &ScanWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a single scan record.
func (r *ScanWriteRepository) Save(ctx context.Context, scan *models.ScanDB) error {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := sqlx.NamedExecContext(ctx, executor, scanInsert, scan)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(scanInsert), " "),
		"args", []any{scan.ID, scan.DeviceID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// SaveBatch inserts all records as one transaction: either every record
// commits or none does. When the request context already carries a
// transaction that one is used; otherwise a local one is opened.
func (r *ScanWriteRepository) SaveBatch(ctx context.Context, scans []models.ScanDB) error {
	if len(scans) == 0 {
		return nil
	}

	var tx *sqlx.Tx
	if r.txGetter != nil {
		tx = r.txGetter(ctx)
	}

	ownTx := tx == nil
	if ownTx {
		var err error
		tx, err = r.db.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()
	}

	res, err := sqlx.NamedExecContext(ctx, tx, scanInsert, scans)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(scanInsert), " "),
		"args", []any{len(scans)},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}

	if ownTx {
		return tx.Commit()
	}
	return nil
}
