package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// JSONB is a custom type for handling Postgres jsonb columns with sqlx.
// It carries the raw document bytes; adapters marshal domain structs into
// it and out of it.
type JSONB []byte

// Value implements the driver.Valuer interface
func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		// Empty documents are stored as an empty jsonb object, not NULL
		return "{}", nil
	}
	return string(j), nil
}

// Scan implements the sql.Scanner interface
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		buf := make([]byte, len(v))
		copy(buf, v)
		*j = buf
	case string:
		*j = []byte(v)
	default:
		return errors.New("JSONB Scan: unsupported type " + fmt.Sprintf("%T", value))
	}
	return nil
}
