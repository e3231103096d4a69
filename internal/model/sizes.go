package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SizeList stores the available sizes of a product as a JSON array in a
// single text column.
type SizeList []string

func (s SizeList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal size list: %w", err)
	}
	return string(b), nil
}

func (s *SizeList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported size list column type %T", value)
	}

	return json.Unmarshal(raw, s)
}
