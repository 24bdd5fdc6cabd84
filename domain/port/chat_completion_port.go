// domain/port/chat_completion_port.go
package port

import (
	"context"
	"errors"
)

// ErrCompletionTimeout - การเรียก provider เกินเวลาที่กำหนด
// แยกจาก error อื่นเพื่อให้ handler ตอบ 408 ได้ และไม่มีการ retry
var ErrCompletionTimeout = errors.New("chat completion request timed out")

// ChatCompletionPort เป็น interface สำหรับเรียก chat-completion API ภายนอก
type ChatCompletionPort interface {
	// Complete ส่ง prompt แล้วรับข้อความตอบกลับดิบจาก model
	Complete(ctx context.Context, prompt string) (string, error)
}
