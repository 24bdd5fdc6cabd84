// domain/types/jsonb.go
package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONB - ชนิดข้อมูลสำหรับคอลัมน์ jsonb ใน Postgres
type JSONB map[string]interface{}

// Value แปลง JSONB เป็นค่าที่เก็บลงฐานข้อมูลได้
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan อ่านค่าจากฐานข้อมูลกลับมาเป็น JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for JSONB scan")
	}

	return json.Unmarshal(data, j)
}
