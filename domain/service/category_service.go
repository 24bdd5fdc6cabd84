// domain/service/category_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
)

// CategoryService เป็น interface ที่กำหนดฟังก์ชันของ Category (folder) Service
type CategoryService interface {
	CreateCategory(userID uuid.UUID, name, color, icon string, isPrivate bool) (*models.Category, error)
	GetUserCategories(userID uuid.UUID) ([]*models.Category, error)
	UpdateCategory(id, userID uuid.UUID, name, color, icon string, isPrivate *bool) (*models.Category, error)

	// DeleteCategory ลบ folder - ถูกปฏิเสธพร้อมจำนวนบันทึกที่ยังอ้างอิงอยู่ถ้ายังไม่ว่าง
	DeleteCategory(id, userID uuid.UUID) (int64, error)

	// GetFriendPublicCategories ดึง folder ที่ไม่ private ของเพื่อน (mention autocomplete)
	// ต้องเป็นเจ้าของเองหรือเป็นเพื่อนที่ accepted แล้วเท่านั้น
	GetFriendPublicCategories(viewerID, ownerID uuid.UUID) ([]*models.Category, error)
}
