// domain/models/note.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Note - บันทึกของผู้ใช้
// สร้างแล้วแก้ไขไม่ได้ ทำได้เพียงลบโดยเจ้าของเท่านั้น
type Note struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	CategoryID *uuid.UUID `json:"category_id,omitempty" gorm:"type:uuid;index"` // NULL = ไม่อยู่ใน folder ใด
	Content    string     `json:"content" gorm:"type:text;not null"`
	IsPrivate  bool       `json:"is_private" gorm:"default:false"` // true = เห็นเฉพาะเจ้าของ ไม่ถูกใช้ใน cross-user read

	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	User     *User     `json:"user,omitempty" gorm:"foreignkey:UserID"`
	Category *Category `json:"category,omitempty" gorm:"foreignkey:CategoryID"`
}

// TableName - ระบุชื่อตารางใน database
func (Note) TableName() string {
	return "notes"
}
