// infrastructure/geocoding/amap_client.go
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/liuxinyuan2000/nebula-api/domain/port"
)

// AmapConfig - ค่าตั้งต้นของ Amap reverse-geocoding API
type AmapConfig struct {
	BaseURL string // default https://restapi.amap.com
	APIKey  string
	Timeout time.Duration
}

type amapClient struct {
	config     *AmapConfig
	httpClient *http.Client
}

// NewAmapClient สร้าง client สำหรับค้นหาที่อยู่และ POI จากพิกัด
// APIKey ว่างไม่ถือเป็น error ตอนสร้าง - NearbyPlaces จะตอบ error ให้ service ถือว่าไม่มีข้อมูลแทน
func NewAmapClient(config *AmapConfig) port.GeocodingPort {
	if config.BaseURL == "" {
		config.BaseURL = "https://restapi.amap.com"
	}
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Second
	}

	return &amapClient{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

type regeoResponse struct {
	Status    string `json:"status"` // "1" = สำเร็จ
	Info      string `json:"info"`
	Regeocode struct {
		FormattedAddress string `json:"formatted_address"`
		Pois             []struct {
			Name     string `json:"name"`
			Type     string `json:"type"`
			Address  string `json:"address"`
			Distance string `json:"distance"`
		} `json:"pois"`
	} `json:"regeocode"`
}

// NearbyPlaces เรียก regeo API พร้อม extensions=all เพื่อให้ได้ POI ใกล้เคียงกลับมาด้วย
func (c *amapClient) NearbyPlaces(ctx context.Context, lat, lng float64) (string, []port.PointOfInterest, error) {
	if c.config.APIKey == "" {
		return "", nil, errors.New("geocoding API key not configured")
	}

	params := url.Values{}
	params.Set("key", c.config.APIKey)
	params.Set("location", fmt.Sprintf("%f,%f", lng, lat)) // Amap ใช้ลำดับ lng,lat
	params.Set("extensions", "all")
	params.Set("radius", "1000")

	reqURL := c.config.BaseURL + "/v3/geocode/regeo?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("geocoding returned %d", resp.StatusCode)
	}

	var result regeoResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", nil, fmt.Errorf("geocoding decode: %w", err)
	}

	if result.Status != "1" {
		return "", nil, fmt.Errorf("geocoding provider error: %s", result.Info)
	}

	pois := make([]port.PointOfInterest, 0, len(result.Regeocode.Pois))
	for _, p := range result.Regeocode.Pois {
		pois = append(pois, port.PointOfInterest{
			Name:     p.Name,
			Type:     p.Type,
			Address:  p.Address,
			Distance: p.Distance,
		})
	}

	return result.Regeocode.FormattedAddress, pois, nil
}
