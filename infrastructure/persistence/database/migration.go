// database/migration.go
package database

import (
	"log"

	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"gorm.io/gorm"
)

// RunMigration ทำการ migrate โมเดลทั้งหมดไปยังฐานข้อมูล
func RunMigration(db *gorm.DB) error {
	log.Println("กำลังทำ Auto Migration...")

	// ทำการ migrate โมเดลทั้งหมด
	// การเรียงลำดับมีความสำคัญ - ควรเริ่มจากตารางหลักก่อน แล้วค่อยไปตารางที่มี foreign key
	err := db.AutoMigrate(
		// โมเดลหลัก (ไม่มี FK ไปหาตารางอื่น)
		&models.User{},

		// โมเดลที่มี FK ไปหาตารางหลัก
		&models.Category{},
		&models.Friendship{},
		&models.StatusLike{},
		&models.UserOutingTheme{},

		// โมเดลที่มี FK ไปหาตารางที่มี FK
		&models.Note{},
		&models.ChatSession{},
		&models.ChatMessage{},
	)

	if err != nil {
		log.Printf("Auto Migration ล้มเหลว: %v", err)
		return err
	}

	log.Println("Auto Migration สำเร็จ")
	return nil
}

// CreateIndices สร้าง indices เพื่อเพิ่มประสิทธิภาพในการค้นหา
func CreateIndices(db *gorm.DB) error {
	log.Println("กำลังสร้าง indices...")

	// สร้าง indices สำหรับตารางที่มีการค้นหาบ่อย
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_notes_user_created ON notes(user_id, created_at DESC)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_chat_messages_session_created ON chat_messages(session_id, created_at)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_status_likes_target ON status_likes(target_user_id)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_outing_themes_expiry ON user_outing_themes(is_active, expires_at)").Error; err != nil {
		return err
	}

	log.Println("สร้าง indices สำเร็จ")
	return nil
}

// SetupDatabase ทำ migration และสร้าง indices ในขั้นตอนเดียว
func SetupDatabase(db *gorm.DB) error {
	if err := RunMigration(db); err != nil {
		return err
	}

	if err := CreateIndices(db); err != nil {
		return err
	}

	return nil
}
