package models

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Enumerated status literals used by the subsystem fields.
const (
	StatusNormal          = "normal"
	StatusAbnormal        = "abnormal"
	StatusNeedsInspection = "needs-inspection"
)

// Battery holds the battery subsystem fields. Every field is optional.
type Battery struct {
	TotalOperationTime      *float64 `json:"total_operation_time"`
	SoH                     *float64 `json:"soh"`
	SoC                     *float64 `json:"soc"`
	ChargeDischargeCycles   *int64   `json:"charge_discharge_cycles"`
	EstimatedRange          *float64 `json:"estimated_range"`
	CellVoltageDeviation    *float64 `json:"cell_voltage_deviation"`
	TemperatureSensorStatus *string  `json:"temperature_sensor_status"`
	Temperature             *float64 `json:"temperature"`
	CaseStatus              *string  `json:"case_status"`
	HVCableStatus           *string  `json:"hv_cable_status"`
}

// Motor holds the drive motor subsystem fields.
type Motor struct {
	TorqueValue          *float64 `json:"torque_value"`
	Status               *string  `json:"status"`
	ShortOpenStatus      *string  `json:"short_open_status"`
	InsulationResistance *string  `json:"insulation_resistance"`
	SurgeTest            *string  `json:"surge_test"`
}

// Decelerator holds the decelerator subsystem fields.
type Decelerator struct {
	Status     *string  `json:"status"`
	TorqueRPM  *float64 `json:"torque_rpm"`
	NoiseLevel *float64 `json:"noise_level"`
	OilLeak    *string  `json:"oil_leak"`
}

// OBC holds the on-board charger subsystem fields.
type OBC struct {
	Status    *string `json:"status"`
	BMSStatus *string `json:"bms_status"`
}

// EPCU holds the power-control unit subsystem fields.
type EPCU struct {
	InverterStatus *string `json:"inverter_status"`
	LDCStatus      *string `json:"ldc_status"`
	VCUStatus      *string `json:"vcu_status"`
}

// ScanDB represents one diagnostic scan record as stored. Records are
// append-only: no exposed operation updates or deletes them.
type ScanDB struct {
	ID            uuid.UUID `db:"id"`
	DeviceID      string    `db:"device_id"`
	ScanTimestamp time.Time `db:"scan_timestamp"`

	BatteryTotalOperationTime      *float64 `db:"battery_total_operation_time"`
	BatterySoH                     *float64 `db:"battery_soh"`
	BatterySoC                     *float64 `db:"battery_soc"`
	BatteryChargeDischargeCycles   *int64   `db:"battery_charge_discharge_cycles"`
	BatteryEstimatedRange          *float64 `db:"battery_estimated_range"`
	BatteryCellVoltageDeviation    *float64 `db:"battery_cell_voltage_deviation"`
	BatteryTemperatureSensorStatus *string  `db:"battery_temperature_sensor_status"`
	BatteryTemperature             *float64 `db:"battery_temperature"`
	BatteryCaseStatus              *string  `db:"battery_case_status"`
	BatteryHVCableStatus           *string  `db:"battery_hv_cable_status"`

	MotorTorqueValue          *float64 `db:"motor_torque_value"`
	MotorStatus               *string  `db:"motor_status"`
	MotorShortOpenStatus      *string  `db:"motor_short_open_status"`
	MotorInsulationResistance *string  `db:"motor_insulation_resistance"`
	MotorSurgeTest            *string  `db:"motor_surge_test"`

	DeceleratorStatus     *string  `db:"decelerator_status"`
	DeceleratorTorqueRPM  *float64 `db:"decelerator_torque_rpm"`
	DeceleratorNoiseLevel *float64 `db:"decelerator_noise_level"`
	DeceleratorOilLeak    *string  `db:"decelerator_oil_leak"`

	OBCStatus *string `db:"obc_status"`
	BMSStatus *string `db:"bms_status"`

	EPCUInverterStatus *string `db:"epcu_inverter_status"`
	EPCULDCStatus      *string `db:"epcu_ldc_status"`
	EPCUVCUStatus      *string `db:"epcu_vcu_status"`

	AdditionalData JSONB     `db:"additional_data"`
	CreatedAt      time.Time `db:"created_at"`
}

// ScanRecord is the client-facing representation of one scan, grouped by
// subsystem, with the health verdict computed at read time.
type ScanRecord struct {
	ID             string      `json:"id"`
	DeviceID       string      `json:"device_id"`
	ScanTimestamp  string      `json:"scan_timestamp"`
	Battery        Battery     `json:"battery"`
	Motor          Motor       `json:"motor"`
	Decelerator    Decelerator `json:"decelerator"`
	OBC            OBC         `json:"obc"`
	EPCU           EPCU        `json:"epcu"`
	AdditionalData JSONB       `json:"additional_data"`
	CreatedAt      string      `json:"created_at"`
	HealthStatus   string      `json:"health_status,omitempty"`
}

// Record builds the grouped client representation. healthStatus may be empty
// for contexts that do not report a verdict.
func (s *ScanDB) Record(healthStatus string) ScanRecord {
	additional := s.AdditionalData
	if additional == nil {
		additional = JSONB{}
	}
	return ScanRecord{
		ID:            s.ID.String(),
		DeviceID:      s.DeviceID,
		ScanTimestamp: s.ScanTimestamp.UTC().Format(time.RFC3339),
		Battery: Battery{
			TotalOperationTime:      s.BatteryTotalOperationTime,
			SoH:                     s.BatterySoH,
			SoC:                     s.BatterySoC,
			ChargeDischargeCycles:   s.BatteryChargeDischargeCycles,
			EstimatedRange:          s.BatteryEstimatedRange,
			CellVoltageDeviation:    s.BatteryCellVoltageDeviation,
			TemperatureSensorStatus: s.BatteryTemperatureSensorStatus,
			Temperature:             s.BatteryTemperature,
			CaseStatus:              s.BatteryCaseStatus,
			HVCableStatus:           s.BatteryHVCableStatus,
		},
		Motor: Motor{
			TorqueValue:          s.MotorTorqueValue,
			Status:               s.MotorStatus,
			ShortOpenStatus:      s.MotorShortOpenStatus,
			InsulationResistance: s.MotorInsulationResistance,
			SurgeTest:            s.MotorSurgeTest,
		},
		Decelerator: Decelerator{
			Status:     s.DeceleratorStatus,
			TorqueRPM:  s.DeceleratorTorqueRPM,
			NoiseLevel: s.DeceleratorNoiseLevel,
			OilLeak:    s.DeceleratorOilLeak,
		},
		OBC: OBC{
			Status:    s.OBCStatus,
			BMSStatus: s.BMSStatus,
		},
		EPCU: EPCU{
			InverterStatus: s.EPCUInverterStatus,
			LDCStatus:      s.EPCULDCStatus,
			VCUStatus:      s.EPCUVCUStatus,
		},
		AdditionalData: additional,
		CreatedAt:      s.CreatedAt.UTC().Format(time.RFC3339),
		HealthStatus:   healthStatus,
	}
}

// ScanPayload is the external ingestion shape: device_id is required, every
// subsystem sub-object and every field inside one is optional.
type ScanPayload struct {
	DeviceID       string       `json:"device_id"`
	ScanTimestamp  string       `json:"scan_timestamp"`
	Battery        *Battery     `json:"battery"`
	Motor          *Motor       `json:"motor"`
	Decelerator    *Decelerator `json:"decelerator"`
	OBC            *OBC         `json:"obc"`
	EPCU           *EPCU        `json:"epcu"`
	AdditionalData JSONB        `json:"additional_data"`
}

// DecodeScanPayload unmarshals an ingestion payload leniently: a mistyped
// optional field is dropped while the rest of the payload stands, so a single
// malformed subsystem value never rejects the whole record. Invalid JSON and
// payloads that are not objects at all are still reported as errors.
func DecodeScanPayload(data []byte) (*ScanPayload, error) {
	var p ScanPayload
	if err := json.Unmarshal(data, &p); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return nil, err
		}
	}
	return &p, nil
}

// BatchFailure reports one rejected element of a batch ingestion request.
type BatchFailure struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}
