// domain/repository/status_like_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
)

type StatusLikeRepository interface {
	Create(like *models.StatusLike) error
	FindByPair(likerID, targetUserID uuid.UUID) (*models.StatusLike, error)
	DeleteByPair(likerID, targetUserID uuid.UUID) error
	CountByTargetUserID(targetUserID uuid.UUID) (int64, error)
}
