// application/serviceimpl/category_service.go
package serviceimpl

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/repository"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
)

// ErrCategoryNotEmpty - ลบ folder ไม่ได้เพราะยังมีบันทึกอ้างอิงอยู่
var ErrCategoryNotEmpty = errors.New("category still has notes")

type categoryService struct {
	categoryRepo      repository.CategoryRepository
	noteRepo          repository.NoteRepository
	friendshipService service.FriendshipService
}

// NewCategoryService สร้าง instance ใหม่ของ CategoryService
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	noteRepo repository.NoteRepository,
	friendshipService service.FriendshipService,
) service.CategoryService {
	return &categoryService{
		categoryRepo:      categoryRepo,
		noteRepo:          noteRepo,
		friendshipService: friendshipService,
	}
}

// CreateCategory สร้าง folder ใหม่ ชื่อต้องไม่ซ้ำภายในผู้ใช้
func (s *categoryService) CreateCategory(userID uuid.UUID, name, color, icon string, isPrivate bool) (*models.Category, error) {
	if name == "" {
		return nil, errors.New("category name is required")
	}

	// ตรวจชื่อซ้ำ
	existing, err := s.categoryRepo.FindByUserIDAndName(userID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("category name already exists")
	}

	now := time.Now()
	category := &models.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		Icon:      icon,
		IsPrivate: isPrivate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetUserCategories ดึงรายการ folder ของผู้ใช้
func (s *categoryService) GetUserCategories(userID uuid.UUID) ([]*models.Category, error) {
	return s.categoryRepo.FindByUserID(userID)
}

// UpdateCategory อัปเดต folder - ตรวจสอบเจ้าของซ้ำก่อนแก้ไขเสมอ
func (s *categoryService) UpdateCategory(id, userID uuid.UUID, name, color, icon string, isPrivate *bool) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil || category.UserID != userID {
		return nil, errors.New("category not found")
	}

	// ถ้าเปลี่ยนชื่อ ต้องไม่ชนกับ folder อื่นของผู้ใช้เดียวกัน
	if name != "" && name != category.Name {
		existing, err := s.categoryRepo.FindByUserIDAndName(userID, name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errors.New("category name already exists")
		}
		category.Name = name
	}

	if color != "" {
		category.Color = color
	}
	if icon != "" {
		category.Icon = icon
	}
	if isPrivate != nil {
		category.IsPrivate = *isPrivate
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory ลบ folder
// ถ้ายังมีบันทึกอ้างอิงอยู่จะปฏิเสธ พร้อมส่งจำนวนบันทึกที่ block การลบกลับไป
func (s *categoryService) DeleteCategory(id, userID uuid.UUID) (int64, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return 0, err
	}
	if category == nil || category.UserID != userID {
		return 0, errors.New("category not found")
	}

	count, err := s.noteRepo.CountByCategoryID(id)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return count, ErrCategoryNotEmpty
	}

	return 0, s.categoryRepo.Delete(id)
}

// GetFriendPublicCategories ดึง folder ที่ไม่ private ของผู้ใช้อีกคน
// ผ่าน friendship gate ก่อน แล้วค่อยกรอง private ออก (สองเงื่อนไขเป็นอิสระต่อกัน)
func (s *categoryService) GetFriendPublicCategories(viewerID, ownerID uuid.UUID) ([]*models.Category, error) {
	allowed, err := s.friendshipService.CanViewStatus(viewerID, ownerID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.New("access denied")
	}

	if viewerID == ownerID {
		return s.categoryRepo.FindByUserID(ownerID)
	}

	return s.categoryRepo.FindPublicByUserID(ownerID)
}
