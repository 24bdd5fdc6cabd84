// domain/models/chat_message.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessageRole - บทบาทของข้อความใน session
type ChatMessageRole string

const (
	ChatMessageRoleUser      ChatMessageRole = "user"
	ChatMessageRoleAssistant ChatMessageRole = "assistant"
	ChatMessageRoleSystem    ChatMessageRole = "system"
)

// IsValid ตรวจสอบว่า role อยู่ในชุดที่รองรับ
func (r ChatMessageRole) IsValid() bool {
	switch r {
	case ChatMessageRoleUser, ChatMessageRoleAssistant, ChatMessageRoleSystem:
		return true
	}
	return false
}

// ChatMessage - ข้อความหนึ่งรายการใน chat session
type ChatMessage struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SessionID uuid.UUID       `json:"session_id" gorm:"type:uuid;not null;index"`
	Role      ChatMessageRole `json:"role" gorm:"type:varchar(20);not null"` // user, assistant, system
	Content   string          `json:"content" gorm:"type:text;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	Session *ChatSession `json:"session,omitempty" gorm:"foreignkey:SessionID"`
}

// TableName - ระบุชื่อตารางใน database
func (ChatMessage) TableName() string {
	return "chat_messages"
}
