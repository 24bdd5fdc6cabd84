// application/serviceimpl/user_service.go
package serviceimpl

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/repository"
	serviceInterfaces "github.com/liuxinyuan2000/nebula-api/domain/service"
	"github.com/liuxinyuan2000/nebula-api/domain/types"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) serviceInterfaces.UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) GetUserByID(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

// UpdateProfile อัปเดตข้อมูลโปรไฟล์ผู้ใช้
func (s *userService) UpdateProfile(id uuid.UUID, data types.JSONB) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	// อัปเดตข้อมูลตามที่รับมา
	if displayName, ok := data["display_name"].(string); ok {
		user.DisplayName = displayName
	}

	if bio, ok := data["bio"].(string); ok {
		user.Bio = bio
	}

	// อัปเดต settings ถ้ามี
	if settings, ok := data["settings"].(map[string]interface{}); ok {
		if user.Settings == nil {
			user.Settings = types.JSONB{}
		}
		for key, value := range settings {
			user.Settings[key] = value
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateLastActive(id uuid.UUID) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	now := time.Now()
	user.LastActiveAt = &now
	return s.userRepo.Update(user)
}
