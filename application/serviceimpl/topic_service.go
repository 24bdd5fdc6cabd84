// application/serviceimpl/topic_service.go
package serviceimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/port"
	"github.com/liuxinyuan2000/nebula-api/domain/repository"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
	"github.com/liuxinyuan2000/nebula-api/pkg/utils"
)

const (
	recentNoteLimit = 12
	maxTags         = 3
	maxTopics       = 8
	topicCacheTTL   = 10 * time.Minute
)

// ErrNotFriends - ผู้ใช้สองคนยังไม่ได้เป็นเพื่อนกัน
var ErrNotFriends = errors.New("users are not friends")

// ErrAccessDenied - ไม่มีสิทธิ์เข้าดูข้อมูลของผู้ใช้คนนี้
var ErrAccessDenied = errors.New("access denied")

type topicService struct {
	noteRepo          repository.NoteRepository
	userRepo          repository.UserRepository
	friendshipService service.FriendshipService
	themeService      service.OutingThemeService
	completionClient  port.ChatCompletionPort
	geocodingClient   port.GeocodingPort
	redisClient       *redis.Client
}

// NewTopicService สร้าง instance ใหม่ของ TopicService
func NewTopicService(
	noteRepo repository.NoteRepository,
	userRepo repository.UserRepository,
	friendshipService service.FriendshipService,
	themeService service.OutingThemeService,
	completionClient port.ChatCompletionPort,
	geocodingClient port.GeocodingPort,
	redisClient *redis.Client,
) service.TopicService {
	return &topicService{
		noteRepo:          noteRepo,
		userRepo:          userRepo,
		friendshipService: friendshipService,
		themeService:      themeService,
		completionClient:  completionClient,
		geocodingClient:   geocodingClient,
		redisClient:       redisClient,
	}
}

// joinNoteContents รวมเนื้อหาบันทึกเป็นข้อความเดียวคั่นด้วยบรรทัดใหม่
func joinNoteContents(notes []*models.Note) string {
	contents := make([]string, 0, len(notes))
	for _, note := range notes {
		if note.Content != "" {
			contents = append(contents, note.Content)
		}
	}
	return strings.Join(contents, "\n")
}

// fetchPOIContext ดึงข้อมูลสถานที่ใกล้เคียงแบบ best-effort
// key หาย พิกัดไม่ครบ หรือ provider ล่ม = ไม่มีข้อมูล POI ไม่ใช่ hard failure
func (s *topicService) fetchPOIContext(ctx context.Context, lat, lng *float64) string {
	if s.geocodingClient == nil || lat == nil || lng == nil {
		return ""
	}

	address, pois, err := s.geocodingClient.NearbyPlaces(ctx, *lat, *lng)
	if err != nil {
		log.Printf("[TopicService] POI lookup failed (continuing without): %v", err)
		return ""
	}

	var b strings.Builder
	if address != "" {
		b.WriteString("Current location: " + address + "\n")
	}
	if len(pois) > 0 {
		b.WriteString("Nearby places:\n")
		for i, poi := range pois {
			if i >= 5 {
				break
			}
			b.WriteString("- " + poi.Name)
			if poi.Type != "" {
				b.WriteString(" (" + poi.Type + ")")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// cacheGet อ่านผลลัพธ์จาก cache - พลาดหรือ error ถือว่า cache miss
func (s *topicService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.redisClient == nil {
		return false
	}

	data, err := s.redisClient.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[TopicService] cache read failed: %v", err)
		}
		return false
	}

	return json.Unmarshal([]byte(data), dest) == nil
}

// cacheSet เก็บผลลัพธ์ลง cache แบบ best-effort
func (s *topicService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.redisClient == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := s.redisClient.Set(ctx, key, data, topicCacheTTL).Err(); err != nil {
		log.Printf("[TopicService] cache write failed: %v", err)
	}
}

// GenerateTags สรุปบันทึกล่าสุดของ target เป็น status tag สั้นๆ ไม่เกิน 3 รายการ
func (s *topicService) GenerateTags(ctx context.Context, viewerID, targetUserID uuid.UUID) ([]string, error) {
	// friendship gate: เจ้าของเองหรือเพื่อน accepted เท่านั้น
	allowed, err := s.friendshipService.CanViewStatus(viewerID, targetUserID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrAccessDenied
	}

	// เจ้าของเห็นบันทึกทั้งหมดของตัวเอง คนอื่นเห็นเฉพาะที่ไม่ private
	// cache แยกตาม scope ของผู้เรียก ไม่อย่างนั้นเพื่อนจะได้ผลลัพธ์ที่สรุปจากบันทึก private
	isOwner := viewerID == targetUserID
	scope := "public"
	if isOwner {
		scope = "self"
	}

	cacheKey := "nebula:tags:" + targetUserID.String() + ":" + scope
	var cached []string
	if s.cacheGet(ctx, cacheKey, &cached) && len(cached) > 0 {
		return cached, nil
	}

	var notes []*models.Note
	if isOwner {
		notes, err = s.noteRepo.FindRecentByUserID(targetUserID, recentNoteLimit)
	} else {
		notes, err = s.noteRepo.FindRecentPublicByUserID(targetUserID, recentNoteLimit)
	}
	if err != nil {
		return nil, err
	}

	notesText := joinNoteContents(notes)
	if notesText == "" {
		// ไม่มีบันทึกให้สรุป - ใช้ default แทนการเรียก provider เปล่าๆ
		return utils.DefaultTags, nil
	}

	prompt := fmt.Sprintf(`Summarize this person's recent notes into at most %d short status tags (2-4 words each) that describe what they are currently into.
Return only JSON in the form {"tags": ["...", "..."]} with no commentary and no code fences.

Notes:
%s`, maxTags, notesText)

	raw, err := s.completionClient.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	tags := utils.ParseTags(raw, maxTags)
	s.cacheSet(ctx, cacheKey, tags)

	return tags, nil
}

// GenerateCommonTopics สร้างหัวข้อสนทนาร่วมของผู้ใช้สองคนที่เป็นเพื่อนกัน
func (s *topicService) GenerateCommonTopics(ctx context.Context, userID, friendID uuid.UUID, lat, lng *float64) ([]utils.Topic, error) {
	isFriend, err := s.friendshipService.IsFriend(userID, friendID)
	if err != nil {
		return nil, err
	}
	if !isFriend {
		return nil, ErrNotFriends
	}

	// prompt สร้างจากบันทึก private และธีมของฝั่งผู้เรียก
	// cache key จึงต้องแยกตามทิศทาง ห้ามใช้คู่ canonical ที่สองฝั่งแชร์กัน
	cacheKey := "nebula:topics:" + userID.String() + ":" + friendID.String()
	var cached []utils.Topic
	if s.cacheGet(ctx, cacheKey, &cached) && len(cached) > 0 {
		return cached, nil
	}

	// บันทึกของตัวเองรวม private ได้ ของเพื่อนเอาเฉพาะที่ไม่ private
	ownNotes, err := s.noteRepo.FindRecentByUserID(userID, recentNoteLimit)
	if err != nil {
		return nil, err
	}
	friendNotes, err := s.noteRepo.FindRecentPublicByUserID(friendID, recentNoteLimit)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(`Suggest at most %d conversation topics two friends would both enjoy, based on their recent notes.
Return only JSON in the form {"topics": [{"title": "...", "description": "..."}]} with no commentary and no code fences.

`, maxTopics))
	b.WriteString("First person's notes:\n" + joinNoteContents(ownNotes) + "\n\n")
	b.WriteString("Second person's notes:\n" + joinNoteContents(friendNotes) + "\n")

	// ธีม outing ของผู้เรียกใช้เป็น context เสริม
	theme, err := s.themeService.GetActiveTheme(userID)
	if err == nil && theme != nil {
		b.WriteString("\nThe first person is currently in the mood for: " + theme.ThemeName)
		if theme.ThemeDescription != "" {
			b.WriteString(" (" + theme.ThemeDescription + ")")
		}
		b.WriteString("\n")
	}

	if poi := s.fetchPOIContext(ctx, lat, lng); poi != "" {
		b.WriteString("\n" + poi)
	}

	raw, err := s.completionClient.Complete(ctx, b.String())
	if err != nil {
		return nil, err
	}

	topics := utils.ParseTopics(raw, maxTopics)
	s.cacheSet(ctx, cacheKey, topics)

	return topics, nil
}

// GenerateGuestTopics สร้างหัวข้อสำหรับผู้เยี่ยมชมที่ไม่ได้ login
// ใช้เฉพาะบันทึกสาธารณะของผู้ใช้เป้าหมาย
func (s *topicService) GenerateGuestTopics(ctx context.Context, targetUserID uuid.UUID, lat, lng *float64) ([]utils.Topic, error) {
	user, err := s.userRepo.FindByID(targetUserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	cacheKey := "nebula:guest_topics:" + targetUserID.String()
	var cached []utils.Topic
	if s.cacheGet(ctx, cacheKey, &cached) && len(cached) > 0 {
		return cached, nil
	}

	notes, err := s.noteRepo.FindRecentPublicByUserID(targetUserID, recentNoteLimit)
	if err != nil {
		return nil, err
	}

	notesText := joinNoteContents(notes)
	if notesText == "" {
		return utils.DefaultTopics, nil
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(`A visitor wants ice-breaker topics to chat with this person. Suggest at most %d topics based on their recent notes.
Return only JSON in the form {"topics": [{"title": "...", "description": "..."}]} with no commentary and no code fences.

`, maxTopics))
	b.WriteString("Notes:\n" + notesText + "\n")

	if poi := s.fetchPOIContext(ctx, lat, lng); poi != "" {
		b.WriteString("\n" + poi)
	}

	raw, err := s.completionClient.Complete(ctx, b.String())
	if err != nil {
		return nil, err
	}

	topics := utils.ParseTopics(raw, maxTopics)
	s.cacheSet(ctx, cacheKey, topics)

	return topics, nil
}
