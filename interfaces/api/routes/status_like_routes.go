// interfaces/api/routes/status_like_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/handler"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
)

// SetupStatusLikeRoutes กำหนดเส้นทางสำหรับการ like สถานะ
func SetupStatusLikeRoutes(router fiber.Router, statusLikeHandler *handler.StatusLikeHandler) {
	status := router.Group("/status")
	status.Use(middleware.Protected())

	status.Post("/:userId/like", statusLikeHandler.ToggleLike)   // กด like/unlike
	status.Get("/:userId/likes", statusLikeHandler.GetLikeStatus) // จำนวน like + สถานะของผู้เรียก
}
