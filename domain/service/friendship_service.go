// domain/service/friendship_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
)

// FriendshipService เป็น interface ที่กำหนดฟังก์ชันของ Friendship Service
// ความสัมพันธ์เป็นแบบ symmetric - เพิ่มจากฝั่งไหนก็ได้ผลเหมือนกัน
type FriendshipService interface {
	AddFriend(userID, friendID uuid.UUID) (*models.Friendship, error)
	RemoveFriend(userID, friendID uuid.UUID) error
	GetFriends(userID uuid.UUID) ([]*models.User, error)

	// IsFriend ตรวจว่ามีความสัมพันธ์ accepted ระหว่างสองคน
	IsFriend(userID, otherID uuid.UUID) (bool, error)

	// CanViewStatus = เจ้าของเอง หรือเป็นเพื่อน accepted
	// ใช้ gate หน้า tags และรายการ folder ของเพื่อน
	CanViewStatus(viewerID, ownerID uuid.UUID) (bool, error)
}
