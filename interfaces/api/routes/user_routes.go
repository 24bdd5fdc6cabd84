// interfaces/api/routes/user_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/handler"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
)

// SetupUserRoutes กำหนดเส้นทางสำหรับข้อมูลผู้ใช้
func SetupUserRoutes(router fiber.Router, userHandler *handler.UserHandler) {
	users := router.Group("/users")
	users.Use(middleware.Protected())

	users.Get("/:id", userHandler.GetUser)          // ดู profile ผู้ใช้
	users.Patch("/me", userHandler.UpdateProfile)   // อัปเดต profile ตัวเอง
	users.Post("/me/heartbeat", userHandler.Heartbeat) // อัปเดตเวลา active ล่าสุด
}
