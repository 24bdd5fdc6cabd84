// domain/models/friendship.go

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FriendshipStatusAccepted - สถานะเดียวที่ระบบรองรับ (เพิ่มเพื่อนสำเร็จทันที)
const FriendshipStatusAccepted = "accepted"

// Friendship - ความสัมพันธ์แบบเพื่อนระหว่างผู้ใช้สองคน
// เก็บเพียงหนึ่งแถวต่อคู่ โดย User1ID < User2ID เสมอ (เรียงตามตัวอักษร)
// เพื่อรับประกันว่าไม่มีแถวซ้ำไม่ว่าจะเพิ่มจากฝั่งไหน
type Friendship struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	User1ID uuid.UUID `json:"user1_id" gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair"`
	User2ID uuid.UUID `json:"user2_id" gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair"`
	Status  string    `json:"status" gorm:"type:varchar(20);not null;default:'accepted'"`

	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	User1 *User `json:"user1,omitempty" gorm:"foreignkey:User1ID"`
	User2 *User `json:"user2,omitempty" gorm:"foreignkey:User2ID"`
}

// TableName - ระบุชื่อตารางใน database
func (Friendship) TableName() string {
	return "friendships"
}

// OrderedPair เรียงคู่ user ID ให้อยู่ในรูป canonical (ค่าน้อยมาก่อน)
func OrderedPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if strings.Compare(a.String(), b.String()) > 0 {
		return b, a
	}
	return a, b
}
