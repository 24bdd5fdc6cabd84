// domain/service/status_like_service.go
package service

import "github.com/google/uuid"

// StatusLikeService เป็น interface ที่กำหนดฟังก์ชันของ Status Like Service
type StatusLikeService interface {
	// ToggleLike กด like/unlike - มีแถวอยู่แล้วลบ ไม่มีก็เพิ่ม
	ToggleLike(likerID, targetUserID uuid.UUID) (hasLiked bool, likeCount int64, err error)

	// GetLikeStatus ดึงจำนวน like และสถานะของ viewer
	GetLikeStatus(viewerID, targetUserID uuid.UUID) (hasLiked bool, likeCount int64, err error)
}
