package models

import (
	"fmt"
	"time"
)

// Timestamp layouts accepted from external systems: RFC 3339 with Z or a
// numeric offset, or a bare local form without zone.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses an ISO-8601 timestamp as submitted by diagnostic
// systems and clients.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
