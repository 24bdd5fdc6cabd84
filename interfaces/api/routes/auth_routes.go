// interfaces/api/routes/auth_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/handler"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
)

// SetupAuthRoutes กำหนดเส้นทางสำหรับการยืนยันตัวตน
func SetupAuthRoutes(router fiber.Router, authHandler *handler.AuthHandler) {
	auth := router.Group("/auth")

	auth.Post("/register", authHandler.Register) // สมัครสมาชิก (รองรับ claim id ที่แจกล่วงหน้า)
	auth.Post("/login", authHandler.Login)       // เข้าสู่ระบบ
	auth.Get("/me", middleware.Protected(), authHandler.GetMe) // ข้อมูลผู้ใช้ปัจจุบันจาก token
}
