package serviceimpl_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/liuxinyuan2000/nebula-api/domain/models"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserRepository) FindByID(id uuid.UUID) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(note *models.Note) error {
	args := m.Called(note)
	return args.Error(0)
}

func (m *mockNoteRepository) GetByID(id, userID uuid.UUID) (*models.Note, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *mockNoteRepository) Delete(id, userID uuid.UUID) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *mockNoteRepository) FindByUserID(userID uuid.UUID, limit, offset int) ([]*models.Note, int64, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*models.Note), args.Get(1).(int64), args.Error(2)
}

func (m *mockNoteRepository) FindByCategoryID(userID, categoryID uuid.UUID, limit, offset int) ([]*models.Note, int64, error) {
	args := m.Called(userID, categoryID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*models.Note), args.Get(1).(int64), args.Error(2)
}

func (m *mockNoteRepository) FindRecentByUserID(userID uuid.UUID, limit int) ([]*models.Note, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Note), args.Error(1)
}

func (m *mockNoteRepository) FindRecentPublicByUserID(userID uuid.UUID, limit int) ([]*models.Note, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Note), args.Error(1)
}

func (m *mockNoteRepository) CountByCategoryID(categoryID uuid.UUID) (int64, error) {
	args := m.Called(categoryID)
	return args.Get(0).(int64), args.Error(1)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *mockCategoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryRepository) Update(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *mockCategoryRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockCategoryRepository) FindByUserID(userID uuid.UUID) ([]*models.Category, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *mockCategoryRepository) FindByUserIDAndName(userID uuid.UUID, name string) (*models.Category, error) {
	args := m.Called(userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryRepository) FindPublicByUserID(userID uuid.UUID) ([]*models.Category, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

type mockFriendshipRepository struct {
	mock.Mock
}

func (m *mockFriendshipRepository) Create(friendship *models.Friendship) error {
	args := m.Called(friendship)
	return args.Error(0)
}

func (m *mockFriendshipRepository) FindByPair(user1ID, user2ID uuid.UUID) (*models.Friendship, error) {
	args := m.Called(user1ID, user2ID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Friendship), args.Error(1)
}

func (m *mockFriendshipRepository) DeleteByPair(user1ID, user2ID uuid.UUID) error {
	args := m.Called(user1ID, user2ID)
	return args.Error(0)
}

func (m *mockFriendshipRepository) FindByUserID(userID uuid.UUID) ([]*models.Friendship, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Friendship), args.Error(1)
}

type mockChatSessionRepository struct {
	mock.Mock
}

func (m *mockChatSessionRepository) Create(session *models.ChatSession) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *mockChatSessionRepository) GetByID(id uuid.UUID) (*models.ChatSession, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatSession), args.Error(1)
}

func (m *mockChatSessionRepository) Update(session *models.ChatSession) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *mockChatSessionRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockChatSessionRepository) FindByUserID(userID uuid.UUID) ([]*models.ChatSession, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ChatSession), args.Error(1)
}

func (m *mockChatSessionRepository) FindByUserIDAndName(userID uuid.UUID, name string) (*models.ChatSession, error) {
	args := m.Called(userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatSession), args.Error(1)
}

type mockChatMessageRepository struct {
	mock.Mock
}

func (m *mockChatMessageRepository) Create(message *models.ChatMessage) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *mockChatMessageRepository) FindBySessionID(sessionID uuid.UUID, limit, offset int) ([]*models.ChatMessage, int64, error) {
	args := m.Called(sessionID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*models.ChatMessage), args.Get(1).(int64), args.Error(2)
}

type mockStatusLikeRepository struct {
	mock.Mock
}

func (m *mockStatusLikeRepository) Create(like *models.StatusLike) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *mockStatusLikeRepository) FindByPair(likerID, targetUserID uuid.UUID) (*models.StatusLike, error) {
	args := m.Called(likerID, targetUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StatusLike), args.Error(1)
}

func (m *mockStatusLikeRepository) DeleteByPair(likerID, targetUserID uuid.UUID) error {
	args := m.Called(likerID, targetUserID)
	return args.Error(0)
}

func (m *mockStatusLikeRepository) CountByTargetUserID(targetUserID uuid.UUID) (int64, error) {
	args := m.Called(targetUserID)
	return args.Get(0).(int64), args.Error(1)
}

type mockOutingThemeRepository struct {
	mock.Mock
}

func (m *mockOutingThemeRepository) Create(theme *models.UserOutingTheme) error {
	args := m.Called(theme)
	return args.Error(0)
}

func (m *mockOutingThemeRepository) FindActiveByUserID(userID uuid.UUID) (*models.UserOutingTheme, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserOutingTheme), args.Error(1)
}

func (m *mockOutingThemeRepository) DeactivateByUserID(userID uuid.UUID) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *mockOutingThemeRepository) DeactivateByID(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockOutingThemeRepository) FindActiveExpiringBefore(t time.Time, limit int) ([]*models.UserOutingTheme, error) {
	args := m.Called(t, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserOutingTheme), args.Error(1)
}

func (m *mockOutingThemeRepository) DeactivateExpired(now time.Time) (int64, error) {
	args := m.Called(now)
	return args.Get(0).(int64), args.Error(1)
}

type mockChatCompletionClient struct {
	mock.Mock
}

func (m *mockChatCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
