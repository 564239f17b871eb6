package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xevscan/scan-api/internal/models"
)

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

func TestEvaluate_NoApplicableFields(t *testing.T) {
	assert.Equal(t, StatusUnknown, Evaluate(&models.ScanDB{DeviceID: "dev-1"}))
	assert.Equal(t, StatusUnknown, Evaluate(nil))
}

func TestEvaluate_EmptyStatusStringNotApplicable(t *testing.T) {
	scan := &models.ScanDB{MotorStatus: s("")}
	assert.Equal(t, StatusUnknown, Evaluate(scan))
}

func TestEvaluate_AllPassing(t *testing.T) {
	scan := &models.ScanDB{
		BatterySoH:                     f(95),
		BatteryTemperature:             f(30),
		BatteryCellVoltageDeviation:    f(0.01),
		BatteryTemperatureSensorStatus: s(models.StatusNormal),
		MotorTorqueValue:               f(1000),
		MotorStatus:                    s(models.StatusNormal),
		DeceleratorNoiseLevel:          f(60),
		DeceleratorStatus:              s(models.StatusNormal),
		OBCStatus:                      s(models.StatusNormal),
		BMSStatus:                      s(models.StatusNormal),
		EPCUInverterStatus:             s(models.StatusNormal),
		EPCULDCStatus:                  s(models.StatusNormal),
		EPCUVCUStatus:                  s(models.StatusNormal),
	}
	assert.Equal(t, StatusExcellent, Evaluate(scan))
}

func TestEvaluate_TierBoundaries(t *testing.T) {
	// 4 applicable checks: 3/4 = 0.75 exactly
	scan := &models.ScanDB{
		BatterySoH:         f(80),
		BatteryTemperature: f(20),
		MotorStatus:        s(models.StatusNormal),
		OBCStatus:          s(models.StatusNeedsInspection),
	}
	assert.Equal(t, StatusGood, Evaluate(scan))

	// 2 applicable checks: 1/2 = 0.50 exactly
	scan = &models.ScanDB{
		BatterySoH:  f(80),
		MotorStatus: s(models.StatusNeedsInspection),
	}
	assert.Equal(t, StatusFair, Evaluate(scan))

	// 13 applicable, 6 passing: 6/13 ~ 0.4615 < 0.5
	scan = &models.ScanDB{
		BatterySoH:                     f(95),
		BatteryTemperature:             f(30),
		BatteryCellVoltageDeviation:    f(0.01),
		BatteryTemperatureSensorStatus: s(models.StatusNormal),
		MotorTorqueValue:               f(1000),
		MotorStatus:                    s(models.StatusNormal),
		DeceleratorNoiseLevel:          f(120),
		DeceleratorStatus:              s(models.StatusNeedsInspection),
		OBCStatus:                      s(models.StatusNeedsInspection),
		BMSStatus:                      s(models.StatusAbnormal),
		EPCUInverterStatus:             s(models.StatusNeedsInspection),
		EPCULDCStatus:                  s(models.StatusNeedsInspection),
		EPCUVCUStatus:                  s(models.StatusNeedsInspection),
	}
	assert.Equal(t, StatusPoor, Evaluate(scan))
}

func TestEvaluate_NumericBoundaries(t *testing.T) {
	tests := []struct {
		name string
		scan models.ScanDB
		want Status
	}{
		{"soh exactly 70 passes", models.ScanDB{BatterySoH: f(70)}, StatusExcellent},
		{"soh 69.9 fails", models.ScanDB{BatterySoH: f(69.9)}, StatusPoor},
		{"deviation exactly 0.04 passes", models.ScanDB{BatteryCellVoltageDeviation: f(0.04)}, StatusExcellent},
		{"deviation 0.0401 fails", models.ScanDB{BatteryCellVoltageDeviation: f(0.0401)}, StatusPoor},
		{"temperature 15.0 passes", models.ScanDB{BatteryTemperature: f(15.0)}, StatusExcellent},
		{"temperature 45.0 passes", models.ScanDB{BatteryTemperature: f(45.0)}, StatusExcellent},
		{"temperature 14.9 fails", models.ScanDB{BatteryTemperature: f(14.9)}, StatusPoor},
		{"torque 950 passes", models.ScanDB{MotorTorqueValue: f(950)}, StatusExcellent},
		{"torque 1050 passes", models.ScanDB{MotorTorqueValue: f(1050)}, StatusExcellent},
		{"torque 1051 fails", models.ScanDB{MotorTorqueValue: f(1051)}, StatusPoor},
		{"noise 99.9 passes", models.ScanDB{DeceleratorNoiseLevel: f(99.9)}, StatusExcellent},
		{"noise exactly 100 fails", models.ScanDB{DeceleratorNoiseLevel: f(100)}, StatusPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(&tt.scan))
		})
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	scan := &models.ScanDB{
		BatterySoH:  f(80),
		MotorStatus: s(models.StatusNeedsInspection),
		OBCStatus:   s(models.StatusNormal),
	}
	first := Evaluate(scan)
	second := Evaluate(scan)
	assert.Equal(t, first, second)
}

func TestIsIssue(t *testing.T) {
	assert.True(t, IsIssue(StatusFair))
	assert.True(t, IsIssue(StatusPoor))
	assert.False(t, IsIssue(StatusGood))
	assert.False(t, IsIssue(StatusExcellent))
	assert.False(t, IsIssue(StatusUnknown))
}
