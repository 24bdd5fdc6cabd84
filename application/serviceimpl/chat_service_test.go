package serviceimpl_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/liuxinyuan2000/nebula-api/application/serviceimpl"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
	"github.com/liuxinyuan2000/nebula-api/domain/service"
)

func newChatFixture() (*mockChatSessionRepository, *mockChatMessageRepository, *mockCategoryRepository, service.ChatService) {
	sessionRepo := new(mockChatSessionRepository)
	messageRepo := new(mockChatMessageRepository)
	categoryRepo := new(mockCategoryRepository)
	svc := serviceimpl.NewChatService(sessionRepo, messageRepo, categoryRepo)
	return sessionRepo, messageRepo, categoryRepo, svc
}

func TestCreateSessionRejectsDuplicateName(t *testing.T) {
	sessionRepo, _, _, svc := newChatFixture()

	userID := uuid.New()
	sessionRepo.On("FindByUserIDAndName", userID, "Daily journal").Return(&models.ChatSession{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Daily journal",
	}, nil).Once()

	_, err := svc.CreateSession(userID, nil, "Daily journal")

	require.Error(t, err)
	assert.Equal(t, "session name already exists", err.Error())
	sessionRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateSessionChecksCategoryOwnership(t *testing.T) {
	sessionRepo, _, categoryRepo, svc := newChatFixture()

	userID := uuid.New()
	categoryID := uuid.New()

	sessionRepo.On("FindByUserIDAndName", userID, "Trip ideas").Return(nil, nil).Once()
	// category เป็นของคนอื่น
	categoryRepo.On("GetByID", categoryID).Return(&models.Category{
		ID:     categoryID,
		UserID: uuid.New(),
	}, nil).Once()

	_, err := svc.CreateSession(userID, &categoryID, "Trip ideas")

	require.Error(t, err)
	assert.Equal(t, "category does not belong to user", err.Error())
	sessionRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAddMessageRejectsInvalidRole(t *testing.T) {
	_, messageRepo, _, svc := newChatFixture()

	_, err := svc.AddMessage(uuid.New(), uuid.New(), models.ChatMessageRole("robot"), "hello")

	require.Error(t, err)
	assert.Equal(t, "invalid message role", err.Error())
	messageRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAddMessageToForeignSession(t *testing.T) {
	sessionRepo, messageRepo, _, svc := newChatFixture()

	sessionID := uuid.New()

	// session เป็นของผู้ใช้อื่น - ตอบเหมือนไม่มี session
	sessionRepo.On("GetByID", sessionID).Return(&models.ChatSession{
		ID:     sessionID,
		UserID: uuid.New(),
	}, nil).Once()

	_, err := svc.AddMessage(sessionID, uuid.New(), models.ChatMessageRoleUser, "hello")

	require.Error(t, err)
	assert.Equal(t, "session not found", err.Error())
	messageRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAddMessageSuccess(t *testing.T) {
	sessionRepo, messageRepo, _, svc := newChatFixture()

	userID := uuid.New()
	sessionID := uuid.New()
	session := &models.ChatSession{ID: sessionID, UserID: userID}

	sessionRepo.On("GetByID", sessionID).Return(session, nil).Once()
	messageRepo.On("Create", mock.MatchedBy(func(msg *models.ChatMessage) bool {
		return msg.SessionID == sessionID && msg.Role == models.ChatMessageRoleAssistant && msg.Content == "Sure, here it is"
	})).Return(nil).Once()
	sessionRepo.On("Update", session).Return(nil).Once()

	message, err := svc.AddMessage(sessionID, userID, models.ChatMessageRoleAssistant, "Sure, here it is")

	require.NoError(t, err)
	assert.Equal(t, sessionID, message.SessionID)
	messageRepo.AssertExpectations(t)
}

func TestGetSessionMessagesOwnershipGate(t *testing.T) {
	sessionRepo, messageRepo, _, svc := newChatFixture()

	sessionID := uuid.New()

	sessionRepo.On("GetByID", sessionID).Return(&models.ChatSession{
		ID:     sessionID,
		UserID: uuid.New(),
	}, nil).Once()

	_, _, err := svc.GetSessionMessages(sessionID, uuid.New(), 50, 0)

	require.Error(t, err)
	assert.Equal(t, "session not found", err.Error())
	messageRepo.AssertNotCalled(t, "FindBySessionID", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteSessionSuccess(t *testing.T) {
	sessionRepo, _, _, svc := newChatFixture()

	userID := uuid.New()
	sessionID := uuid.New()

	sessionRepo.On("GetByID", sessionID).Return(&models.ChatSession{
		ID:     sessionID,
		UserID: userID,
	}, nil).Once()
	sessionRepo.On("Delete", sessionID).Return(nil).Once()

	err := svc.DeleteSession(sessionID, userID)

	require.NoError(t, err)
	sessionRepo.AssertExpectations(t)
}
