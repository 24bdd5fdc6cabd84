package serviceimpl_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/liuxinyuan2000/nebula-api/application/serviceimpl"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
)

func TestCreateNoteWithOwnCategory(t *testing.T) {
	noteRepo := new(mockNoteRepository)
	categoryRepo := new(mockCategoryRepository)
	svc := serviceimpl.NewNoteService(noteRepo, categoryRepo)

	userID := uuid.New()
	categoryID := uuid.New()

	categoryRepo.On("GetByID", categoryID).Return(&models.Category{
		ID:     categoryID,
		UserID: userID,
	}, nil).Once()
	noteRepo.On("Create", mock.MatchedBy(func(n *models.Note) bool {
		return n.UserID == userID && n.CategoryID != nil && *n.CategoryID == categoryID && n.IsPrivate
	})).Return(nil).Once()

	note, err := svc.CreateNote(userID, &categoryID, "tried the new ramen place", true)

	require.NoError(t, err)
	assert.Equal(t, "tried the new ramen place", note.Content)
	noteRepo.AssertExpectations(t)
}

func TestCreateNoteRejectsForeignCategory(t *testing.T) {
	noteRepo := new(mockNoteRepository)
	categoryRepo := new(mockCategoryRepository)
	svc := serviceimpl.NewNoteService(noteRepo, categoryRepo)

	categoryID := uuid.New()

	categoryRepo.On("GetByID", categoryID).Return(&models.Category{
		ID:     categoryID,
		UserID: uuid.New(),
	}, nil).Once()

	_, err := svc.CreateNote(uuid.New(), &categoryID, "content", false)

	require.Error(t, err)
	assert.Equal(t, "category does not belong to user", err.Error())
	noteRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateNoteWithoutCategory(t *testing.T) {
	noteRepo := new(mockNoteRepository)
	categoryRepo := new(mockCategoryRepository)
	svc := serviceimpl.NewNoteService(noteRepo, categoryRepo)

	userID := uuid.New()

	noteRepo.On("Create", mock.MatchedBy(func(n *models.Note) bool {
		return n.UserID == userID && n.CategoryID == nil
	})).Return(nil).Once()

	_, err := svc.CreateNote(userID, nil, "uncategorized thought", false)

	require.NoError(t, err)
	categoryRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestCreateNoteRequiresContent(t *testing.T) {
	noteRepo := new(mockNoteRepository)
	categoryRepo := new(mockCategoryRepository)
	svc := serviceimpl.NewNoteService(noteRepo, categoryRepo)

	_, err := svc.CreateNote(uuid.New(), nil, "", false)

	require.Error(t, err)
	noteRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestDeleteNoteNotFound(t *testing.T) {
	noteRepo := new(mockNoteRepository)
	categoryRepo := new(mockCategoryRepository)
	svc := serviceimpl.NewNoteService(noteRepo, categoryRepo)

	noteID := uuid.New()
	userID := uuid.New()

	noteRepo.On("GetByID", noteID, userID).Return(nil, nil).Once()

	err := svc.DeleteNote(noteID, userID)

	require.Error(t, err)
	assert.Equal(t, "note not found", err.Error())
	noteRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestGetCategoryNotesChecksOwnership(t *testing.T) {
	noteRepo := new(mockNoteRepository)
	categoryRepo := new(mockCategoryRepository)
	svc := serviceimpl.NewNoteService(noteRepo, categoryRepo)

	categoryID := uuid.New()

	categoryRepo.On("GetByID", categoryID).Return(&models.Category{
		ID:     categoryID,
		UserID: uuid.New(),
	}, nil).Once()

	_, _, err := svc.GetCategoryNotes(uuid.New(), categoryID, 20, 0)

	require.Error(t, err)
	assert.Equal(t, "category does not belong to user", err.Error())
}
