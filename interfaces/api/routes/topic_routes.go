// interfaces/api/routes/topic_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/handler"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
)

// SetupTopicRoutes กำหนดเส้นทางสำหรับ AI tag/topic generation
func SetupTopicRoutes(router fiber.Router, topicHandler *handler.TopicHandler) {
	ai := router.Group("/ai")

	// guest endpoint - ไม่ต้อง login ใช้เฉพาะบันทึกสาธารณะ
	ai.Post("/guest-topics", topicHandler.GenerateGuestTopics)

	ai.Post("/tags/:userId", middleware.Protected(), topicHandler.GenerateTags) // status tags (เจ้าของ/เพื่อนเท่านั้น)
	ai.Post("/topics", middleware.Protected(), topicHandler.GenerateCommonTopics) // หัวข้อร่วมกับเพื่อน
}
