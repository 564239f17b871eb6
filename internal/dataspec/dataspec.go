// Package dataspec holds the advisory field specification for EV scan data.
// The documents are static reference material served as-is; ingestion does not
// enforce them.
package dataspec

// FieldSpec describes one scan parameter: unit, resolution, bounds and the
// acceptable value or range. Min, Max and Acceptable mix numbers and strings
// ("unlimited", "950~1050"), so they stay untyped.
type FieldSpec struct {
	Unit        string   `json:"unit,omitempty"`
	Resolution  any      `json:"resolution,omitempty"`
	Min         any      `json:"min,omitempty"`
	Max         any      `json:"max,omitempty"`
	Acceptable  any      `json:"acceptable,omitempty"`
	Options     []string `json:"options,omitempty"`
	Description string   `json:"description"`
	Notes       string   `json:"notes,omitempty"`
}

// Specification maps category -> parameter -> spec.
type Specification map[string]map[string]FieldSpec

// Document is the full data-spec response.
type Document struct {
	Specification   Specification  `json:"specification"`
	Version         string         `json:"version"`
	LastUpdated     string         `json:"last_updated"`
	Categories      []string       `json:"categories"`
	TotalParameters map[string]int `json:"total_parameters"`
}

// Range bounds an acceptable numeric window.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ValidationRule describes the machine-checkable constraints of one parameter.
type ValidationRule struct {
	Type             string   `json:"type"`
	Min              any      `json:"min,omitempty"`
	Max              any      `json:"max,omitempty"`
	Required         bool     `json:"required"`
	Enum             []string `json:"enum,omitempty"`
	WarningThreshold any      `json:"warning_threshold,omitempty"`
	AcceptableRange  *Range   `json:"acceptable_range,omitempty"`
	Precision        int      `json:"precision,omitempty"`
}

// Rules maps category -> parameter -> rule.
type Rules map[string]map[string]ValidationRule

// RulesDocument is the full validation-rules response.
type RulesDocument struct {
	ValidationRules Rules  `json:"validation_rules"`
	Version         string `json:"version"`
	Description     string `json:"description"`
}

const (
	normal          = "normal"
	abnormal        = "abnormal"
	needsInspection = "needs-inspection"
)

var statusOptions = []string{normal, needsInspection}

// Spec returns the advisory field specification document.
func Spec() Document {
	return Document{
		Specification: Specification{
			"battery": {
				"total_operation_time": {
					Unit:        "hours",
					Resolution:  1,
					Min:         0,
					Max:         "unlimited",
					Acceptable:  "~",
					Description: "Total operation time",
				},
				"soh": {
					Unit:        "%",
					Resolution:  0.1,
					Min:         0,
					Max:         100,
					Acceptable:  70,
					Description: "SoH (State of Health)",
				},
				"soc": {
					Unit:        "%",
					Resolution:  0.1,
					Min:         0,
					Max:         100,
					Acceptable:  "~",
					Description: "SoC (State of Charge)",
				},
				"charge_discharge_cycles": {
					Unit:        "cycles",
					Resolution:  1,
					Min:         0,
					Max:         "unlimited",
					Acceptable:  "~",
					Description: "Charge/discharge cycle count",
				},
				"estimated_range": {
					Unit:        "km",
					Resolution:  1,
					Min:         0,
					Max:         "unlimited",
					Acceptable:  "~",
					Description: "Estimated driving range",
				},
				"cell_voltage_deviation": {
					Unit:        "V",
					Resolution:  0.001,
					Min:         0,
					Max:         0.04,
					Acceptable:  0.04,
					Description: "Inter-cell voltage deviation",
					Notes:       "Three decimal places",
				},
				"temperature_sensor_status": {
					Acceptable:  normal,
					Options:     []string{normal, abnormal},
					Description: "Temperature sensor condition",
				},
				"temperature": {
					Unit:        "degC",
					Resolution:  0.1,
					Min:         -127,
					Max:         127,
					Acceptable:  "15.0~45.0",
					Description: "Battery temperature",
				},
				"case_status": {
					Acceptable:  normal,
					Options:     statusOptions,
					Description: "Battery lower case condition",
					Notes:       "Entered manually in the UI",
				},
				"hv_cable_status": {
					Acceptable:  normal,
					Options:     statusOptions,
					Description: "High-voltage cable connection",
					Notes:       "Entered manually in the UI",
				},
			},
			"motor": {
				"torque": {
					Unit:        "Nm",
					Acceptable:  "950~1050",
					Description: "Drive motor torque",
					Notes:       "Acceptable range 950-1050 Nm, needs inspection outside it",
				},
				"status": {
					Acceptable:  normal,
					Options:     statusOptions,
					Description: "Drive motor condition",
				},
				"short_open_status": {
					Acceptable:  normal,
					Options:     statusOptions,
					Description: "Short/open circuit",
				},
				"insulation_resistance": {
					Acceptable:  normal,
					Options:     statusOptions,
					Description: "Insulation resistance",
				},
				"surge_test": {
					Acceptable:  normal,
					Options:     statusOptions,
					Description: "Surge test",
				},
			},
			"decelerator": {
				"status": {
					Acceptable:  normal,
					Options:     statusOptions,
					Description: "Decelerator condition",
				},
				"torque_rpm": {
					Unit:        "RPM",
					Resolution:  1,
					Acceptable:  "950-1050",
					Description: "Torque output / RPM",
				},
				"noise_level": {
					Unit:        "dB",
					Resolution:  1,
					Acceptable:  "<100",
					Description: "Noise check",
				},
				"oil_leak": {
					Acceptable:  normal,
					Options:     statusOptions,
					Description: "Oil leak",
					Notes:       "Entered manually in the UI",
				},
			},
			"obc": {
				"status": {
					Acceptable:  normal,
					Options:     statusOptions,
					Description: "On-board charger",
				},
				"bms_status": {
					Acceptable:  normal,
					Options:     statusOptions,
					Description: "Battery management system",
				},
			},
			"epcu": {
				"inverter_status": {
					Acceptable:  normal,
					Options:     statusOptions,
					Description: "Inverter",
				},
				"ldc_status": {
					Acceptable:  normal,
					Options:     statusOptions,
					Description: "Low-voltage DC-DC converter",
				},
				"vcu_status": {
					Acceptable:  normal,
					Options:     statusOptions,
					Description: "Vehicle control unit",
				},
			},
		},
		Version:     "1.0",
		LastUpdated: "2025-08-21",
		Categories:  []string{"battery", "motor", "decelerator", "obc", "epcu"},
		TotalParameters: map[string]int{
			"battery":     10,
			"motor":       5,
			"decelerator": 4,
			"obc":         2,
			"epcu":        3,
		},
	}
}

// ValidationRules returns the machine-checkable constraints document.
func ValidationRules() RulesDocument {
	statusRule := ValidationRule{Type: "string", Enum: statusOptions}

	return RulesDocument{
		ValidationRules: Rules{
			"battery": {
				"soh": {
					Type:             "number",
					Min:              0,
					Max:              100,
					WarningThreshold: 70,
				},
				"soc": {
					Type: "number",
					Min:  0,
					Max:  100,
				},
				"temperature": {
					Type:            "number",
					Min:             -127,
					Max:             127,
					AcceptableRange: &Range{Min: 15.0, Max: 45.0},
				},
				"cell_voltage_deviation": {
					Type:      "number",
					Min:       0,
					Max:       0.04,
					Precision: 3,
				},
				"temperature_sensor_status": {
					Type: "string",
					Enum: []string{normal, abnormal},
				},
				"case_status":     statusRule,
				"hv_cable_status": statusRule,
			},
			"motor": {
				"torque_value": {
					Type:            "number",
					Min:             0,
					AcceptableRange: &Range{Min: 950, Max: 1050},
				},
				"status":                statusRule,
				"short_open_status":     statusRule,
				"insulation_resistance": statusRule,
				"surge_test":            statusRule,
			},
			"decelerator": {
				"status": statusRule,
				"torque_rpm": {
					Type:            "number",
					Min:             0,
					AcceptableRange: &Range{Min: 950, Max: 1050},
				},
				"noise_level": {
					Type:             "number",
					Min:              0,
					WarningThreshold: 100,
				},
				"oil_leak": statusRule,
			},
			"obc": {
				"status":     statusRule,
				"bms_status": statusRule,
			},
			"epcu": {
				"inverter_status": statusRule,
				"ldc_status":      statusRule,
				"vcu_status":      statusRule,
			},
		},
		Version:     "1.0",
		Description: "Validation rules for EV scan data based on specifications",
	}
}
