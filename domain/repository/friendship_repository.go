// domain/repository/friendship_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
)

// FriendshipRepository จัดการแถวความสัมพันธ์แบบ canonical pair
// ทุกเมธอดที่รับคู่ user ID คาดหวังว่า caller เรียงลำดับมาแล้วด้วย models.OrderedPair
type FriendshipRepository interface {
	Create(friendship *models.Friendship) error
	FindByPair(user1ID, user2ID uuid.UUID) (*models.Friendship, error)
	DeleteByPair(user1ID, user2ID uuid.UUID) error
	FindByUserID(userID uuid.UUID) ([]*models.Friendship, error)
}
