// interfaces/api/routes/chat_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/handler"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
)

// SetupChatRoutes กำหนดเส้นทางสำหรับ chat session และข้อความ
func SetupChatRoutes(router fiber.Router, chatHandler *handler.ChatHandler) {
	sessions := router.Group("/chat-sessions")
	sessions.Use(middleware.Protected())

	sessions.Post("/", chatHandler.CreateSession)      // สร้าง session
	sessions.Get("/", chatHandler.GetSessions)         // รายการ session
	sessions.Patch("/:id", chatHandler.UpdateSession)  // แก้ไขชื่อ/ย้าย folder
	sessions.Delete("/:id", chatHandler.DeleteSession) // ลบ session พร้อมข้อความทั้งหมด

	sessions.Post("/:id/messages", chatHandler.AddMessage) // เพิ่มข้อความเข้า session
	sessions.Get("/:id/messages", chatHandler.GetMessages) // ดึงข้อความเรียงตามเวลา
}
