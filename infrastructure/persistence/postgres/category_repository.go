// infrastructure/persistence/postgres/category_repository.go
package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/repository"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository สร้าง instance ใหม่ของ CategoryRepository
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// Create สร้าง folder ใหม่
func (r *categoryRepository) Create(category *models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	return r.db.Create(category).Error
}

// GetByID ดึงข้อมูล folder ตาม ID
func (r *categoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("id = ?", id).First(&category).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}

// Update อัปเดตข้อมูล folder
func (r *categoryRepository) Update(category *models.Category) error {
	category.UpdatedAt = time.Now()
	return r.db.Save(category).Error
}

// Delete ลบ folder
func (r *categoryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Category{}, "id = ?", id).Error
}

// FindByUserID ดึงรายการ folder ทั้งหมดของผู้ใช้
func (r *categoryRepository) FindByUserID(userID uuid.UUID) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&categories).Error

	if err != nil {
		return nil, err
	}

	return categories, nil
}

// FindByUserIDAndName ดึง folder ตามชื่อ (ตรวจชื่อซ้ำ)
func (r *categoryRepository) FindByUserIDAndName(userID uuid.UUID, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&category).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}

// FindPublicByUserID ดึงเฉพาะ folder ที่ไม่ private
// ใช้ตอนเพื่อนขอดูรายการ folder (mention autocomplete)
func (r *categoryRepository) FindPublicByUserID(userID uuid.UUID) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.Where("user_id = ? AND is_private = ?", userID, false).
		Order("created_at ASC").
		Find(&categories).Error

	if err != nil {
		return nil, err
	}

	return categories, nil
}
