package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xevscan/scan-api/internal/dataspec"
)

// NewDataSpecHandler returns an HTTP handler serving the advisory field
// specification for scan payloads.
// @Summary Get the scan data specification
// @Description Returns units, resolutions, ranges and acceptable values for every scan parameter. Advisory only; ingestion does not enforce it.
// @Tags data-spec
// @Produce json
// @Success 200 {object} dataspec.Document "Field specification"
// @Router /api/data-spec [get]
func NewDataSpecHandler() http.HandlerFunc {
	doc := dataspec.Spec()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(doc)
	}
}

// NewValidationRulesHandler returns an HTTP handler serving the
// machine-checkable validation rules for scan payloads.
// @Summary Get the scan data validation rules
// @Description Returns per-parameter types, bounds, enums and warning thresholds.
// @Tags data-spec
// @Produce json
// @Success 200 {object} dataspec.RulesDocument "Validation rules"
// @Router /api/data-spec/validation-rules [get]
func NewValidationRulesHandler() http.HandlerFunc {
	doc := dataspec.ValidationRules()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(doc)
	}
}
