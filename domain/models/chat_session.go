// domain/models/chat_session.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession - ห้องสนทนา AI ของผู้ใช้หนึ่งคน
// ชื่อ session ต้องไม่ซ้ำกันภายในผู้ใช้คนเดียวกัน
type ChatSession struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_chat_sessions_user_name"`
	CategoryID *uuid.UUID `json:"category_id,omitempty" gorm:"type:uuid"`
	Name       string     `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_chat_sessions_user_name"`

	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	// ลบ session แล้ว messages ถูกลบตามด้วย FK cascade ของฐานข้อมูล
	User     *User          `json:"user,omitempty" gorm:"foreignkey:UserID"`
	Category *Category      `json:"category,omitempty" gorm:"foreignkey:CategoryID"`
	Messages []*ChatMessage `json:"messages,omitempty" gorm:"foreignkey:SessionID;constraint:OnDelete:CASCADE"`
}

// TableName - ระบุชื่อตารางใน database
func (ChatSession) TableName() string {
	return "chat_sessions"
}
