package health

import (
	"github.com/xevscan/scan-api/internal/models"
)

// Status is the qualitative health verdict derived from one scan record.
// Verdicts are never stored; they are recomputed on every read.
type Status string

const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusFair      Status = "fair"
	StatusPoor      Status = "poor"
	StatusUnknown   Status = "unknown"
)

// A check inspects one field of a scan record. It reports whether the field
// is present (applicable) and, if so, whether it passes its predicate.
// Absent fields contribute nothing in either direction.
type check func(s *models.ScanDB) (applicable, pass bool)

// numeric builds a check over an optional numeric field.
func numeric(field func(*models.ScanDB) *float64, ok func(float64) bool) check {
	return func(s *models.ScanDB) (bool, bool) {
		v := field(s)
		if v == nil {
			return false, false
		}
		return true, ok(*v)
	}
}

// normal builds a check over an optional status field that passes when the
// value equals the "normal" literal. An empty string counts as absent.
func normal(field func(*models.ScanDB) *string) check {
	return func(s *models.ScanDB) (bool, bool) {
		v := field(s)
		if v == nil || *v == "" {
			return false, false
		}
		return true, *v == models.StatusNormal
	}
}

// checks is the ordered rule table. Thresholds follow the vehicle data
// specification served at /api/data-spec.
var checks = []check{
	numeric(func(s *models.ScanDB) *float64 { return s.BatterySoH }, func(v float64) bool { return v >= 70 }),
	numeric(func(s *models.ScanDB) *float64 { return s.BatteryTemperature }, func(v float64) bool { return v >= 15.0 && v <= 45.0 }),
	numeric(func(s *models.ScanDB) *float64 { return s.BatteryCellVoltageDeviation }, func(v float64) bool { return v <= 0.04 }),
	normal(func(s *models.ScanDB) *string { return s.BatteryTemperatureSensorStatus }),
	numeric(func(s *models.ScanDB) *float64 { return s.MotorTorqueValue }, func(v float64) bool { return v >= 950 && v <= 1050 }),
	normal(func(s *models.ScanDB) *string { return s.MotorStatus }),
	numeric(func(s *models.ScanDB) *float64 { return s.DeceleratorNoiseLevel }, func(v float64) bool { return v < 100 }),
	normal(func(s *models.ScanDB) *string { return s.DeceleratorStatus }),
	normal(func(s *models.ScanDB) *string { return s.OBCStatus }),
	normal(func(s *models.ScanDB) *string { return s.BMSStatus }),
	normal(func(s *models.ScanDB) *string { return s.EPCUInverterStatus }),
	normal(func(s *models.ScanDB) *string { return s.EPCULDCStatus }),
	normal(func(s *models.ScanDB) *string { return s.EPCUVCUStatus }),
}

// Evaluate maps a scan record to a health verdict. Pure and deterministic:
// it runs the rule table over the present fields and classifies the pass
// ratio. With zero applicable checks the verdict is unknown.
func Evaluate(s *models.ScanDB) Status {
	if s == nil {
		return StatusUnknown
	}

	total, passed := 0, 0
	for _, c := range checks {
		applicable, pass := c(s)
		if !applicable {
			continue
		}
		total++
		if pass {
			passed++
		}
	}

	if total == 0 {
		return StatusUnknown
	}

	ratio := float64(passed) / float64(total)
	switch {
	case ratio >= 0.9:
		return StatusExcellent
	case ratio >= 0.75:
		return StatusGood
	case ratio >= 0.5:
		return StatusFair
	default:
		return StatusPoor
	}
}

// IsIssue reports whether a verdict counts as a device issue in analytics.
func IsIssue(st Status) bool {
	return st == StatusFair || st == StatusPoor
}
