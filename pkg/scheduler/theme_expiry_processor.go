// pkg/scheduler/theme_expiry_processor.go
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
)

// ThemeExpiryProcessor ปิดธีม outing ที่ถึงเวลาหมดอายุ
// ใช้ Hybrid Approach: In-Memory Timer + Fallback Poll
type ThemeExpiryProcessor struct {
	themeService     service.OutingThemeService
	timerManager     *TimerManager
	fallbackInterval time.Duration // ตรวจสอบ fallback ทุก 5 นาที
}

// NewThemeExpiryProcessor สร้าง processor ใหม่
func NewThemeExpiryProcessor(themeService service.OutingThemeService) *ThemeExpiryProcessor {
	processor := &ThemeExpiryProcessor{
		themeService:     themeService,
		fallbackInterval: 5 * time.Minute,
	}

	processor.timerManager = NewTimerManager(processor.expireTheme)

	return processor
}

// Start เริ่มการทำงานของ processor
func (p *ThemeExpiryProcessor) Start(ctx context.Context) {
	log.Println("[ThemeExpiryProcessor] Starting with precise timing mode...")

	// 1. โหลดธีมที่มีเวลาหมดอายุจาก DB และสร้าง timers
	p.loadExpiringThemes()

	// 2. เริ่ม fallback processor เป็น safety net
	ticker := time.NewTicker(p.fallbackInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[ThemeExpiryProcessor] Stopping...")
			p.timerManager.StopAll()
			log.Println("[ThemeExpiryProcessor] Stopped")
			return
		case <-ticker.C:
			p.processFallback()
		}
	}
}

// loadExpiringThemes โหลดธีม active ที่มี expires_at ตอน startup
func (p *ThemeExpiryProcessor) loadExpiringThemes() {
	log.Println("[ThemeExpiryProcessor] Loading expiring themes from database...")

	// ดึงล่วงหน้า 24 ชม.
	futureTime := time.Now().Add(24 * time.Hour)
	themes, err := p.themeService.GetExpiringThemesForProcessor(futureTime, 1000)
	if err != nil {
		log.Printf("[ThemeExpiryProcessor] Error loading expiring themes: %v", err)
		return
	}

	for _, theme := range themes {
		if theme.ExpiresAt != nil {
			p.timerManager.Schedule(theme.ID, *theme.ExpiresAt)
		}
	}

	log.Printf("[ThemeExpiryProcessor] Loaded %d expiring themes", len(themes))
}

// processFallback ปิดธีมที่ตกค้าง (อาจเกิดจาก server restart)
func (p *ThemeExpiryProcessor) processFallback() {
	count, err := p.themeService.ExpireOverdueThemes()
	if err != nil {
		log.Printf("[ThemeExpiryProcessor] Fallback error: %v", err)
		return
	}

	if count > 0 {
		log.Printf("[ThemeExpiryProcessor] Fallback expired %d overdue themes", count)
	}
}

// expireTheme ปิดธีม (callback จาก timer)
func (p *ThemeExpiryProcessor) expireTheme(themeID uuid.UUID) {
	log.Printf("[ThemeExpiryProcessor] Expiring theme: %s", themeID)

	if err := p.themeService.ExpireTheme(themeID); err != nil {
		log.Printf("[ThemeExpiryProcessor] Failed to expire theme %s: %v", themeID, err)
	} else {
		log.Printf("[ThemeExpiryProcessor] Theme %s expired", themeID)
	}
}

// ScheduleTheme เรียกจาก handler เมื่อตั้งธีมใหม่ที่มีเวลาหมดอายุ
func (p *ThemeExpiryProcessor) ScheduleTheme(themeID uuid.UUID, expiresAt time.Time) {
	p.timerManager.Schedule(themeID, expiresAt)
}

// CancelTheme เรียกเมื่อผู้ใช้ clear ธีมเองก่อนถึงเวลา
func (p *ThemeExpiryProcessor) CancelTheme(themeID uuid.UUID) {
	p.timerManager.Cancel(themeID)
}

// GetActiveTimerCount ดึงจำนวน active timers
func (p *ThemeExpiryProcessor) GetActiveTimerCount() int {
	return p.timerManager.Count()
}
