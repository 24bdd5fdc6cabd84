// application/serviceimpl/note_service.go
package serviceimpl

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/repository"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
)

type noteService struct {
	noteRepo     repository.NoteRepository
	categoryRepo repository.CategoryRepository
}

// NewNoteService สร้าง instance ใหม่ของ NoteService
func NewNoteService(noteRepo repository.NoteRepository, categoryRepo repository.CategoryRepository) service.NoteService {
	return &noteService{
		noteRepo:     noteRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateNote สร้างบันทึกใหม่
func (s *noteService) CreateNote(userID uuid.UUID, categoryID *uuid.UUID, content string, isPrivate bool) (*models.Note, error) {
	if content == "" {
		return nil, errors.New("note content is required")
	}

	// ถ้ามี category_id ต้องเป็น folder ของผู้ใช้คนเดียวกัน
	if categoryID != nil {
		category, err := s.categoryRepo.GetByID(*categoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || category.UserID != userID {
			return nil, errors.New("category does not belong to user")
		}
	}

	note := &models.Note{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Content:    content,
		IsPrivate:  isPrivate,
		CreatedAt:  time.Now(),
	}

	if err := s.noteRepo.Create(note); err != nil {
		return nil, err
	}

	return note, nil
}

// DeleteNote ลบบันทึก (เฉพาะเจ้าของ)
func (s *noteService) DeleteNote(id, userID uuid.UUID) error {
	note, err := s.noteRepo.GetByID(id, userID)
	if err != nil {
		return err
	}
	if note == nil {
		return errors.New("note not found")
	}

	return s.noteRepo.Delete(id, userID)
}

// GetUserNotes ดึงรายการบันทึกของผู้ใช้
func (s *noteService) GetUserNotes(userID uuid.UUID, limit, offset int) ([]*models.Note, int64, error) {
	return s.noteRepo.FindByUserID(userID, limit, offset)
}

// GetCategoryNotes ดึงบันทึกใน folder ที่ระบุ
func (s *noteService) GetCategoryNotes(userID, categoryID uuid.UUID, limit, offset int) ([]*models.Note, int64, error) {
	// ตรวจสอบว่า folder เป็นของผู้ใช้
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, 0, err
	}
	if category == nil || category.UserID != userID {
		return nil, 0, errors.New("category does not belong to user")
	}

	return s.noteRepo.FindByCategoryID(userID, categoryID, limit, offset)
}
