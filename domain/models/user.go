// domain/models/user.go

package models

import (
	"time"

	"github.com/liuxinyuan2000/nebula-api/domain/types"

	"github.com/google/uuid"
)

// User - ผู้ใช้ในระบบ
type User struct {
	ID           uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Username     string      `json:"username" gorm:"type:varchar(50);not null;unique"`
	PasswordHash string      `json:"-" gorm:"type:text"` // ไม่ส่งกลับในการ response JSON
	DisplayName  string      `json:"display_name,omitempty" gorm:"type:varchar(100)"`
	Bio          string      `json:"bio,omitempty" gorm:"type:text"`
	CreatedAt    time.Time   `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	LastActiveAt *time.Time  `json:"last_active_at,omitempty" gorm:"type:timestamp with time zone"`
	Settings     types.JSONB `json:"settings,omitempty" gorm:"type:jsonb;default:'{}'::jsonb"`

	// Associations
	Notes        []*Note            `json:"notes,omitempty" gorm:"foreignkey:UserID"`
	Categories   []*Category        `json:"categories,omitempty" gorm:"foreignkey:UserID"`
	ChatSessions []*ChatSession     `json:"chat_sessions,omitempty" gorm:"foreignkey:UserID"`
	OutingThemes []*UserOutingTheme `json:"outing_themes,omitempty" gorm:"foreignkey:UserID"`
}

// TableName - ระบุชื่อตารางใน database
func (User) TableName() string {
	return "users"
}
