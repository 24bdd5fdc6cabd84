// application/serviceimpl/auth_service.go
package serviceimpl

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/repository"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
	"github.com/liuxinyuan2000/nebula-api/pkg/utils"
)

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService สร้าง instance ใหม่ของ AuthService
func NewAuthService(userRepo repository.UserRepository) service.AuthService {
	return &authService{
		userRepo: userRepo,
	}
}

// Register สมัครสมาชิกใหม่
// claimID ถ้าระบุมาจะใช้เป็น ID ของผู้ใช้ (กรณี claim ลิงก์ที่แจกไว้ล่วงหน้า)
func (s *authService) Register(username, password string, claimID *uuid.UUID) (*models.User, string, error) {
	if username == "" || password == "" {
		return nil, "", errors.New("username and password are required")
	}

	// ตรวจสอบว่าชื่อผู้ใช้ยังไม่ถูกใช้
	existing, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", errors.New("username already exists")
	}

	// เข้ารหัสรหัสผ่านก่อนเก็บเสมอ
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	// honor ID ที่ผู้เรียกส่งมา ถ้ายังไม่มีใครใช้
	if claimID != nil && *claimID != uuid.Nil {
		claimed, err := s.userRepo.FindByID(*claimID)
		if err != nil {
			return nil, "", err
		}
		if claimed != nil {
			return nil, "", errors.New("user id already claimed")
		}
		user.ID = *claimID
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login ตรวจรหัสผ่านและออก access token
func (s *authService) Login(username, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, "", err
	}

	// ไม่บอกว่าผิดที่ user หรือ password
	if user == nil || !utils.CheckPassword(password, user.PasswordHash) {
		return nil, "", errors.New("user or password incorrect")
	}

	token, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetCurrentUser ดึงข้อมูลผู้ใช้ปัจจุบันและอัปเดต last_active_at
func (s *authService) GetCurrentUser(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	now := time.Now()
	user.LastActiveAt = &now
	if err := s.userRepo.Update(user); err != nil {
		// บันทึกไม่ได้ไม่ถือเป็นความผิดพลาดของการดึงข้อมูล
		log.Printf("[AuthService] failed to update last_active_at for user %s: %v", userID, err)
	}

	return user, nil
}
