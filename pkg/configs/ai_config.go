// pkg/configs/ai_config.go
package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/liuxinyuan2000/nebula-api/domain/port"
	"github.com/liuxinyuan2000/nebula-api/infrastructure/ai"
	"github.com/liuxinyuan2000/nebula-api/infrastructure/geocoding"
)

// SetupChatCompletionClient สร้าง chat-completion client จาก environment
// endpoint ต้องเป็น OpenAI-compatible (เช่น DeepSeek, OpenAI)
func SetupChatCompletionClient() (port.ChatCompletionPort, error) {
	timeout := 20 * time.Second
	if raw := os.Getenv("AI_TIMEOUT_SECONDS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}

	model := getEnv("AI_MODEL", "deepseek-chat")
	log.Printf("Setting up chat completion client with model: %s", model)

	return ai.NewChatCompletionClient(&ai.ChatCompletionConfig{
		BaseURL: getEnv("AI_BASE_URL", "https://api.deepseek.com"),
		APIKey:  os.Getenv("AI_API_KEY"),
		Model:   model,
		Timeout: timeout,
	})
}

// SetupGeocodingClient สร้าง geocoding client จาก environment
// ไม่มี key ก็สร้างได้ - การค้นหา POI จะกลายเป็น no-op ฝั่ง service
func SetupGeocodingClient() port.GeocodingPort {
	return geocoding.NewAmapClient(&geocoding.AmapConfig{
		BaseURL: os.Getenv("AMAP_BASE_URL"),
		APIKey:  os.Getenv("AMAP_API_KEY"),
	})
}
