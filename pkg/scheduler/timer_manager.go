// pkg/scheduler/timer_manager.go
package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TimerCallback เป็น function ที่จะถูกเรียกเมื่อ timer ถึงเวลา
type TimerCallback func(themeID uuid.UUID)

// ExpiryTimer เก็บข้อมูล timer แต่ละตัว
type ExpiryTimer struct {
	ThemeID   uuid.UUID
	ExpiresAt time.Time
	Timer     *time.Timer
}

// TimerManager จัดการ in-memory timers สำหรับธีมที่มีเวลาหมดอายุ
type TimerManager struct {
	mu       sync.RWMutex
	timers   map[uuid.UUID]*ExpiryTimer
	callback TimerCallback
}

// NewTimerManager สร้าง TimerManager ใหม่
func NewTimerManager(callback TimerCallback) *TimerManager {
	return &TimerManager{
		timers:   make(map[uuid.UUID]*ExpiryTimer),
		callback: callback,
	}
}

// Schedule สร้าง timer สำหรับธีมหนึ่งรายการ
func (tm *TimerManager) Schedule(themeID uuid.UUID, expiresAt time.Time) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	// ยกเลิก timer เดิมถ้ามี
	if existing, ok := tm.timers[themeID]; ok {
		existing.Timer.Stop()
		delete(tm.timers, themeID)
	}

	duration := time.Until(expiresAt)

	// ถ้าเวลาผ่านไปแล้ว ปิดทันที
	if duration <= 0 {
		log.Printf("[TimerManager] Theme %s is past due, expiring immediately", themeID)
		go tm.callback(themeID)
		return
	}

	timer := time.AfterFunc(duration, func() {
		log.Printf("[TimerManager] Timer fired for theme %s", themeID)
		tm.callback(themeID)
		tm.remove(themeID)
	})

	tm.timers[themeID] = &ExpiryTimer{
		ThemeID:   themeID,
		ExpiresAt: expiresAt,
		Timer:     timer,
	}

	log.Printf("[TimerManager] Scheduled theme %s to expire at %s (in %v)", themeID, expiresAt.Format(time.RFC3339), duration)
}

// Cancel ยกเลิก timer ของธีม (เช่นตอนผู้ใช้ clear ธีมเอง)
func (tm *TimerManager) Cancel(themeID uuid.UUID) bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if timer, ok := tm.timers[themeID]; ok {
		timer.Timer.Stop()
		delete(tm.timers, themeID)
		log.Printf("[TimerManager] Cancelled timer for theme %s", themeID)
		return true
	}
	return false
}

// remove ลบ timer ออกจาก map (internal use)
func (tm *TimerManager) remove(themeID uuid.UUID) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	delete(tm.timers, themeID)
}

// Count จำนวน active timers
func (tm *TimerManager) Count() int {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return len(tm.timers)
}

// Has ตรวจสอบว่ามี timer สำหรับ themeID หรือไม่
func (tm *TimerManager) Has(themeID uuid.UUID) bool {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	_, ok := tm.timers[themeID]
	return ok
}

// StopAll หยุด timers ทั้งหมด (ตอน shutdown)
func (tm *TimerManager) StopAll() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	for id, timer := range tm.timers {
		timer.Timer.Stop()
		delete(tm.timers, id)
	}
	log.Println("[TimerManager] All timers stopped")
}
