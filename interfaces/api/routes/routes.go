// interfaces/api/routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/handler"
)

// SetupRoutes กำหนดเส้นทาง API ทั้งหมดของแอปพลิเคชัน
func SetupRoutes(
	app *fiber.App,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	noteHandler *handler.NoteHandler,
	categoryHandler *handler.CategoryHandler,
	friendshipHandler *handler.FriendshipHandler,
	chatHandler *handler.ChatHandler,
	statusLikeHandler *handler.StatusLikeHandler,
	outingThemeHandler *handler.OutingThemeHandler,
	topicHandler *handler.TopicHandler,
) {
	// สร้าง API group
	api := app.Group("/api/v1")

	// Health check route
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "API is running",
		})
	})

	// กำหนดเส้นทางต่างๆ
	SetupAuthRoutes(api, authHandler)
	SetupUserRoutes(api, userHandler)
	SetupNoteRoutes(api, noteHandler)
	SetupCategoryRoutes(api, categoryHandler)
	SetupFriendshipRoutes(api, friendshipHandler)
	SetupChatRoutes(api, chatHandler)
	SetupStatusLikeRoutes(api, statusLikeHandler)
	SetupOutingThemeRoutes(api, outingThemeHandler)
	SetupTopicRoutes(api, topicHandler)
}
