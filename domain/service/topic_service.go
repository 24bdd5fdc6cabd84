// domain/service/topic_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/pkg/utils"
)

// TopicService เป็น interface ของ AI pipeline: รวมบันทึก + POI เป็น prompt
// เรียก chat-completion แล้ว parse คำตอบแบบ layered fallback
type TopicService interface {
	// GenerateTags สรุปบันทึกล่าสุดของ target เป็น status tag สั้นๆ
	// viewer ต้องเป็นเจ้าของเองหรือเป็นเพื่อน accepted
	GenerateTags(ctx context.Context, viewerID, targetUserID uuid.UUID) ([]string, error)

	// GenerateCommonTopics สร้างหัวข้อสนทนาร่วมของสองคน (ต้องเป็นเพื่อนกัน)
	GenerateCommonTopics(ctx context.Context, userID, friendID uuid.UUID, lat, lng *float64) ([]utils.Topic, error)

	// GenerateGuestTopics สร้างหัวข้อจากบันทึกสาธารณะของผู้ใช้คนเดียว (ผู้เยี่ยมชมไม่ต้อง login)
	GenerateGuestTopics(ctx context.Context, targetUserID uuid.UUID, lat, lng *float64) ([]utils.Topic, error)
}
