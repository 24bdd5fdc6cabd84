// application/serviceimpl/friendship_service.go
package serviceimpl

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/repository"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
)

type friendshipService struct {
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
}

// NewFriendshipService สร้าง instance ใหม่ของ FriendshipService
func NewFriendshipService(
	friendshipRepo repository.FriendshipRepository,
	userRepo repository.UserRepository,
) service.FriendshipService {
	return &friendshipService{
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
	}
}

// AddFriend เพิ่มเพื่อน - สร้างแถวเดียวแบบ canonical ไม่ว่าเรียกจากฝั่งไหน
func (s *friendshipService) AddFriend(userID, friendID uuid.UUID) (*models.Friendship, error) {
	// ห้ามเพิ่มตัวเองเป็นเพื่อน
	if userID == friendID {
		return nil, errors.New("cannot add yourself as a friend")
	}

	// ตรวจสอบว่ามีผู้ใช้ปลายทางอยู่จริง
	friend, err := s.userRepo.FindByID(friendID)
	if err != nil {
		return nil, err
	}
	if friend == nil {
		return nil, errors.New("user not found")
	}

	// เรียงคู่ให้เป็น canonical ก่อนตรวจซ้ำ
	user1ID, user2ID := models.OrderedPair(userID, friendID)

	existing, err := s.friendshipRepo.FindByPair(user1ID, user2ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("friendship already exists")
	}

	friendship := &models.Friendship{
		ID:        uuid.New(),
		User1ID:   user1ID,
		User2ID:   user2ID,
		Status:    models.FriendshipStatusAccepted,
		CreatedAt: time.Now(),
	}

	if err := s.friendshipRepo.Create(friendship); err != nil {
		return nil, err
	}

	return friendship, nil
}

// RemoveFriend ลบเพื่อน
func (s *friendshipService) RemoveFriend(userID, friendID uuid.UUID) error {
	user1ID, user2ID := models.OrderedPair(userID, friendID)

	existing, err := s.friendshipRepo.FindByPair(user1ID, user2ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("friendship not found")
	}

	return s.friendshipRepo.DeleteByPair(user1ID, user2ID)
}

// GetFriends ดึงรายชื่อเพื่อนทั้งหมด
func (s *friendshipService) GetFriends(userID uuid.UUID) ([]*models.User, error) {
	friendships, err := s.friendshipRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	friends := make([]*models.User, 0)
	for _, friendship := range friendships {
		// อีกฝั่งของแถวคือเพื่อน
		var friendID uuid.UUID
		if friendship.User1ID == userID {
			friendID = friendship.User2ID
		} else {
			friendID = friendship.User1ID
		}

		friend, err := s.userRepo.FindByID(friendID)
		if err != nil || friend == nil {
			continue // ข้ามกรณีไม่พบผู้ใช้
		}

		friends = append(friends, friend)
	}

	return friends, nil
}

// IsFriend ตรวจว่ามีความสัมพันธ์ accepted ระหว่างสองคน
func (s *friendshipService) IsFriend(userID, otherID uuid.UUID) (bool, error) {
	if userID == otherID {
		return false, nil
	}

	user1ID, user2ID := models.OrderedPair(userID, otherID)
	friendship, err := s.friendshipRepo.FindByPair(user1ID, user2ID)
	if err != nil {
		return false, err
	}

	return friendship != nil && friendship.Status == models.FriendshipStatusAccepted, nil
}

// CanViewStatus ตรวจสิทธิ์เข้าดูหน้า status/tags ของผู้ใช้อีกคน
// เจ้าของดูของตัวเองได้เสมอ นอกนั้นต้องเป็นเพื่อน accepted
func (s *friendshipService) CanViewStatus(viewerID, ownerID uuid.UUID) (bool, error) {
	if viewerID == ownerID {
		return true, nil
	}

	return s.IsFriend(viewerID, ownerID)
}
