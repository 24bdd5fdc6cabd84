// domain/models/status_like.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusLike - การกดถูกใจหน้า status ของผู้ใช้อีกคน
// หนึ่งแถวต่อคู่ (liker, target) ใช้วิธี toggle insert/delete
type StatusLike struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	LikerID      uuid.UUID `json:"liker_id" gorm:"type:uuid;not null;uniqueIndex:idx_status_likes_pair"`
	TargetUserID uuid.UUID `json:"target_user_id" gorm:"type:uuid;not null;uniqueIndex:idx_status_likes_pair"`

	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	Liker  *User `json:"liker,omitempty" gorm:"foreignkey:LikerID"`
	Target *User `json:"target,omitempty" gorm:"foreignkey:TargetUserID"`
}

// TableName - ระบุชื่อตารางใน database
func (StatusLike) TableName() string {
	return "status_likes"
}
