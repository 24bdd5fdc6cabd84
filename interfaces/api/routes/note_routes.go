// interfaces/api/routes/note_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/handler"
	"github.com/liuxinyuan2000/nebula-api/interfaces/api/middleware"
)

// SetupNoteRoutes กำหนดเส้นทางสำหรับบันทึก
func SetupNoteRoutes(router fiber.Router, noteHandler *handler.NoteHandler) {
	notes := router.Group("/notes")
	notes.Use(middleware.Protected())

	notes.Post("/", noteHandler.CreateNote)   // สร้างบันทึก
	notes.Get("/", noteHandler.GetNotes)      // รายการบันทึก (กรองด้วย ?category_id= ได้)
	notes.Delete("/:id", noteHandler.DeleteNote) // ลบบันทึก
}
