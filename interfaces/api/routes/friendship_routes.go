// interfaces/api/routes/friendship_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/handler"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
)

// SetupFriendshipRoutes กำหนดเส้นทางสำหรับความสัมพันธ์เพื่อน
func SetupFriendshipRoutes(router fiber.Router, friendshipHandler *handler.FriendshipHandler) {
	friends := router.Group("/friends")
	friends.Use(middleware.Protected())

	friends.Post("/:friendId", friendshipHandler.AddFriend)      // เพิ่มเพื่อน (symmetric)
	friends.Get("/", friendshipHandler.GetFriends)               // รายชื่อเพื่อน
	friends.Delete("/:friendId", friendshipHandler.RemoveFriend) // ลบเพื่อน
	friends.Get("/:friendId/categories", friendshipHandler.GetFriendCategories) // folder ของเพื่อน (เฉพาะที่ไม่ private)
}
