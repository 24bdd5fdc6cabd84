// interfaces/api/routes/category_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/handler"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
)

// SetupCategoryRoutes กำหนดเส้นทางสำหรับ folder จัดบันทึก
func SetupCategoryRoutes(router fiber.Router, categoryHandler *handler.CategoryHandler) {
	categories := router.Group("/categories")
	categories.Use(middleware.Protected())

	categories.Post("/", categoryHandler.CreateCategory)   // สร้าง folder
	categories.Get("/", categoryHandler.GetCategories)     // รายการ folder ของตัวเอง
	categories.Put("/:id", categoryHandler.UpdateCategory)    // แก้ไข folder
	categories.Delete("/:id", categoryHandler.DeleteCategory) // ลบ folder (409 ถ้ายังมีบันทึกอยู่)
}
