package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/models"
)

var (
	// ErrDeviceIDRequired is returned when an ingestion payload has no device_id.
	ErrDeviceIDRequired = errors.New("device_id is required")
)

// ScanWriter defines write operations for scan records.
type ScanWriter interface {
	Save(ctx context.Context, scan *models.ScanDB) error
	SaveBatch(ctx context.Context, scans []models.ScanDB) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// IngestService accepts diagnostic scan submissions from external systems
// and publishes accepted records to Kafka.
type IngestService struct {
	writer      ScanWriter
	kafkaWriter KafkaWriter
}

// NewIngestService creates a new IngestService.
func NewIngestService(writer ScanWriter, kafkaWriter KafkaWriter) *IngestService {
	return &IngestService{
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Ingest validates and persists a single scan submission. Only device_id is
// required; a malformed scan_timestamp falls back to ingestion time instead
// of rejecting the record.
func (svc *IngestService) Ingest(ctx context.Context, p *models.ScanPayload) (*models.ScanDB, error) {
	if strings.TrimSpace(p.DeviceID) == "" {
		return nil, ErrDeviceIDRequired
	}

	scan := buildScan(p, time.Now().UTC())

	if err := svc.writer.Save(ctx, scan); err != nil {
		logger.Log.Errorw("failed to save scan", "device_id", scan.DeviceID, "error", err)
		return nil, err
	}

	svc.publishScan(ctx, scan)

	return scan, nil
}

// IngestBatch validates each element independently: invalid elements are
// reported as (index, reason) pairs while the remaining records persist in
// one transaction. A storage failure aborts the whole batch.
func (svc *IngestService) IngestBatch(ctx context.Context, items []json.RawMessage) ([]models.ScanDB, []models.BatchFailure, error) {
	now := time.Now().UTC()

	accepted := make([]models.ScanDB, 0, len(items))
	failures := make([]models.BatchFailure, 0)

	for i, item := range items {
		p, err := models.DecodeScanPayload(item)
		if err != nil {
			failures = append(failures, models.BatchFailure{Index: i, Error: "invalid scan payload"})
			continue
		}
		if strings.TrimSpace(p.DeviceID) == "" {
			failures = append(failures, models.BatchFailure{Index: i, Error: ErrDeviceIDRequired.Error()})
			continue
		}
		accepted = append(accepted, *buildScan(p, now))
	}

	if len(accepted) > 0 {
		if err := svc.writer.SaveBatch(ctx, accepted); err != nil {
			logger.Log.Errorw("failed to save scan batch", "count", len(accepted), "error", err)
			return nil, nil, err
		}
	}

	for i := range accepted {
		svc.publishScan(ctx, &accepted[i])
	}

	return accepted, failures, nil
}

// publishScan publishes an accepted scan record to Kafka.
func (svc *IngestService) publishScan(ctx context.Context, scan *models.ScanDB) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "scan_id", scan.ID)
		return
	}

	data, err := json.Marshal(scan.Record(""))
	if err != nil {
		logger.Log.Errorw("Failed to marshal scan for Kafka", "scan_id", scan.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(scan.ID.String()),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish scan to Kafka", "scan_id", scan.ID, "error", err)
	} else {
		logger.Log.Infow("Scan published to Kafka", "scan_id", scan.ID, "device_id", scan.DeviceID)
	}
}

// buildScan normalizes an ingestion payload into a scan row.
func buildScan(p *models.ScanPayload, now time.Time) *models.ScanDB {
	ts := now
	if p.ScanTimestamp != "" {
		if parsed, err := models.ParseTimestamp(p.ScanTimestamp); err == nil {
			ts = parsed
		}
	}

	additional := p.AdditionalData
	if additional == nil {
		additional = models.JSONB{}
	}

	scan := &models.ScanDB{
		ID:             uuid.New(),
		DeviceID:       p.DeviceID,
		ScanTimestamp:  ts,
		AdditionalData: additional,
		CreatedAt:      now,
	}

	if b := p.Battery; b != nil {
		scan.BatteryTotalOperationTime = b.TotalOperationTime
		scan.BatterySoH = b.SoH
		scan.BatterySoC = b.SoC
		scan.BatteryChargeDischargeCycles = b.ChargeDischargeCycles
		scan.BatteryEstimatedRange = b.EstimatedRange
		scan.BatteryCellVoltageDeviation = b.CellVoltageDeviation
		scan.BatteryTemperatureSensorStatus = b.TemperatureSensorStatus
		scan.BatteryTemperature = b.Temperature
		scan.BatteryCaseStatus = b.CaseStatus
		scan.BatteryHVCableStatus = b.HVCableStatus
	}
	if m := p.Motor; m != nil {
		scan.MotorTorqueValue = m.TorqueValue
		scan.MotorStatus = m.Status
		scan.MotorShortOpenStatus = m.ShortOpenStatus
		scan.MotorInsulationResistance = m.InsulationResistance
		scan.MotorSurgeTest = m.SurgeTest
	}
	if d := p.Decelerator; d != nil {
		scan.DeceleratorStatus = d.Status
		scan.DeceleratorTorqueRPM = d.TorqueRPM
		scan.DeceleratorNoiseLevel = d.NoiseLevel
		scan.DeceleratorOilLeak = d.OilLeak
	}
	if o := p.OBC; o != nil {
		scan.OBCStatus = o.Status
		scan.BMSStatus = o.BMSStatus
	}
	if e := p.EPCU; e != nil {
		scan.EPCUInverterStatus = e.InverterStatus
		scan.EPCULDCStatus = e.LDCStatus
		scan.EPCUVCUStatus = e.VCUStatus
	}

	return scan
}
