package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONB is an open-ended key-value bag stored in a PostgreSQL jsonb column.
// The service treats it as opaque and passes it through unchanged.
type JSONB map[string]any

// Value implements driver.Valuer. A nil map is stored as an empty object.
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner.
func (j *JSONB) Scan(src any) error {
	if src == nil {
		*j = JSONB{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}
