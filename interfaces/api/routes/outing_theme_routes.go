// interfaces/api/routes/outing_theme_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/handler"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
)

// SetupOutingThemeRoutes กำหนดเส้นทางสำหรับธีม outing
func SetupOutingThemeRoutes(router fiber.Router, outingThemeHandler *handler.OutingThemeHandler) {
	themes := router.Group("/themes")
	themes.Use(middleware.Protected())

	themes.Put("/", outingThemeHandler.SetTheme)               // ตั้งธีมใหม่ (ปิดธีมเดิมอัตโนมัติ)
	themes.Get("/active", outingThemeHandler.GetActiveTheme)   // ธีมที่ active อยู่
	themes.Delete("/active", outingThemeHandler.ClearTheme)    // ปิดธีม
}
