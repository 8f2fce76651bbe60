package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// AvailabilityMap maps an ISO date ("2006-01-02") to the member's open time
// slots for that day, sorted ascending by hour. A date key holding an empty
// list is a stored value in its own right and is not collapsed into key
// absence anywhere in this codebase.
type AvailabilityMap map[string][]string

func (m AvailabilityMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *AvailabilityMap) Scan(value interface{}) error {
	if value == nil {
		*m = AvailabilityMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported type for AvailabilityMap")
	}
}

// Has reports whether the given slot is published for the given date.
func (m AvailabilityMap) Has(date, slot string) bool {
	for _, s := range m[date] {
		if s == slot {
			return true
		}
	}
	return false
}
