// domain/models/category.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category - folder สำหรับจัดกลุ่มบันทึกของผู้ใช้
// ชื่อต้องไม่ซ้ำกันภายในผู้ใช้คนเดียวกัน
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_name"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_user_name"`
	Color     string    `json:"color" gorm:"type:varchar(20)"`
	Icon      string    `json:"icon" gorm:"type:varchar(50)"`
	IsPrivate bool      `json:"is_private" gorm:"default:false"` // true = ไม่แสดงให้เพื่อนเห็น

	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	User  *User   `json:"user,omitempty" gorm:"foreignkey:UserID"`
	Notes []*Note `json:"notes,omitempty" gorm:"foreignkey:CategoryID"`
}

// TableName - ระบุชื่อตารางใน database
func (Category) TableName() string {
	return "categories"
}
