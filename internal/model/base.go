package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Lifecycle is the soft-delete marker carried by most entities. Records are
// created "activo" and toggled through dedicated transition endpoints.
type Lifecycle string

const (
	LifecycleActive   Lifecycle = "activo"
	LifecycleInactive Lifecycle = "inactivo"
)

func (l Lifecycle) Valid() bool {
	return l == LifecycleActive || l == LifecycleInactive
}

// Date is a calendar date without a time component, encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", *s)
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		d.Time = time.Time{}
	case time.Time:
		d.Time = v
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
	return nil
}

// bothOrNeither reports whether a range filter is complete: either both
// bounds supplied or neither. Half-open ranges are rejected uniformly.
func bothOrNeither(from, to interface{}) bool {
	fromSet := !isNil(from)
	toSet := !isNil(to)
	return fromSet == toSet
}

func isNil(v interface{}) bool {
	switch t := v.(type) {
	case *time.Time:
		return t == nil
	case *float64:
		return t == nil
	default:
		return v == nil
	}
}

// JSONMap represents a generic JSON object stored in a jsonb column.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONMap", src)
	}
	return json.Unmarshal(b, m)
}
