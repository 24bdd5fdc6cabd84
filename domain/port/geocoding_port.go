// domain/port/geocoding_port.go
package port

import "context"

// PointOfInterest - สถานที่ใกล้เคียงจาก geocoding provider
type PointOfInterest struct {
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	Address  string `json:"address,omitempty"`
	Distance string `json:"distance,omitempty"`
}

// GeocodingPort เป็น interface สำหรับเรียก reverse-geocoding / POI provider
// การเรียกเป็นแบบ best-effort: ผิดพลาดแล้วผู้เรียกถือว่าไม่มีข้อมูล POI ไม่ใช่ hard failure
type GeocodingPort interface {
	// NearbyPlaces ค้นหาสถานที่ใกล้เคียงจากพิกัด
	NearbyPlaces(ctx context.Context, lat, lng float64) (address string, pois []PointOfInterest, err error)
}
