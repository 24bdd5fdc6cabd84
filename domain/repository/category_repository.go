// domain/repository/category_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
)

type CategoryRepository interface {
	// CRUD operations
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	Update(category *models.Category) error
	Delete(id uuid.UUID) error

	// Query operations
	FindByUserID(userID uuid.UUID) ([]*models.Category, error)
	FindByUserIDAndName(userID uuid.UUID, name string) (*models.Category, error)
	FindPublicByUserID(userID uuid.UUID) ([]*models.Category, error)
}
