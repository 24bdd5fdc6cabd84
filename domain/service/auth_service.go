// domain/service/auth_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
)

// AuthService เป็น interface ที่กำหนดฟังก์ชันของ Auth Service
type AuthService interface {
	// Register สมัครสมาชิกใหม่ claimID ใช้ตอนผู้ใช้ claim ลิงก์ที่แจกไว้ล่วงหน้า (กำหนด ID เอง)
	Register(username, password string, claimID *uuid.UUID) (*models.User, string, error)

	// Login ตรวจรหัสผ่านและออก access token
	Login(username, password string) (*models.User, string, error)

	GetCurrentUser(userID uuid.UUID) (*models.User, error)
}
