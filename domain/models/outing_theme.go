// domain/models/outing_theme.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// UserOutingTheme - ธีมการออกไปเที่ยวที่ผู้ใช้ประกาศไว้
// มี active ได้ครั้งละหนึ่งธีมต่อผู้ใช้ ตั้งธีมใหม่แล้วธีมเดิมถูกปิดอัตโนมัติ
// ใช้เป็น context เสริมตอน generate หัวข้อสนทนา
type UserOutingTheme struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID           uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	ThemeName        string     `json:"theme_name" gorm:"type:varchar(100);not null"`
	ThemeDescription string     `json:"theme_description,omitempty" gorm:"type:text"`
	IsActive         bool       `json:"is_active" gorm:"default:true;index"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty" gorm:"type:timestamp with time zone"`

	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	User *User `json:"user,omitempty" gorm:"foreignkey:UserID"`
}

// TableName - ระบุชื่อตารางใน database
func (UserOutingTheme) TableName() string {
	return "user_outing_themes"
}
