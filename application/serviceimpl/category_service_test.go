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

func newCategoryFixture() (*mockCategoryRepository, *mockNoteRepository, *mockFriendshipRepository, *mockUserRepository, service.CategoryService) {
	categoryRepo := new(mockCategoryRepository)
	noteRepo := new(mockNoteRepository)
	friendshipRepo := new(mockFriendshipRepository)
	userRepo := new(mockUserRepository)

	friendshipService := serviceimpl.NewFriendshipService(friendshipRepo, userRepo)
	svc := serviceimpl.NewCategoryService(categoryRepo, noteRepo, friendshipService)

	return categoryRepo, noteRepo, friendshipRepo, userRepo, svc
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	categoryRepo, _, _, _, svc := newCategoryFixture()

	userID := uuid.New()
	categoryRepo.On("FindByUserIDAndName", userID, "Travel").Return(&models.Category{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Travel",
	}, nil).Once()

	_, err := svc.CreateCategory(userID, "Travel", "", "", false)

	require.Error(t, err)
	assert.Equal(t, "category name already exists", err.Error())
	categoryRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestDeleteCategoryBlockedByNotes(t *testing.T) {
	categoryRepo, noteRepo, _, _, svc := newCategoryFixture()

	userID := uuid.New()
	categoryID := uuid.New()

	categoryRepo.On("GetByID", categoryID).Return(&models.Category{
		ID:     categoryID,
		UserID: userID,
	}, nil).Once()
	noteRepo.On("CountByCategoryID", categoryID).Return(int64(4), nil).Once()

	count, err := svc.DeleteCategory(categoryID, userID)

	require.ErrorIs(t, err, serviceimpl.ErrCategoryNotEmpty)
	// จำนวนบันทึกที่ block การลบต้องถูกส่งกลับให้ client แสดงได้
	assert.Equal(t, int64(4), count)
	categoryRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteCategoryEmptySucceeds(t *testing.T) {
	categoryRepo, noteRepo, _, _, svc := newCategoryFixture()

	userID := uuid.New()
	categoryID := uuid.New()

	categoryRepo.On("GetByID", categoryID).Return(&models.Category{
		ID:     categoryID,
		UserID: userID,
	}, nil).Once()
	noteRepo.On("CountByCategoryID", categoryID).Return(int64(0), nil).Once()
	categoryRepo.On("Delete", categoryID).Return(nil).Once()

	count, err := svc.DeleteCategory(categoryID, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	categoryRepo.AssertExpectations(t)
}

func TestDeleteCategoryOwnedByOtherUser(t *testing.T) {
	categoryRepo, _, _, _, svc := newCategoryFixture()

	categoryID := uuid.New()

	categoryRepo.On("GetByID", categoryID).Return(&models.Category{
		ID:     categoryID,
		UserID: uuid.New(),
	}, nil).Once()

	_, err := svc.DeleteCategory(categoryID, uuid.New())

	require.Error(t, err)
	assert.Equal(t, "category not found", err.Error())
}

func TestGetFriendPublicCategoriesOwnerSeesAll(t *testing.T) {
	categoryRepo, _, _, _, svc := newCategoryFixture()

	ownerID := uuid.New()

	categoryRepo.On("FindByUserID", ownerID).Return([]*models.Category{
		{Name: "Public"},
		{Name: "Secret", IsPrivate: true},
	}, nil).Once()

	categories, err := svc.GetFriendPublicCategories(ownerID, ownerID)

	require.NoError(t, err)
	assert.Len(t, categories, 2)
	categoryRepo.AssertNotCalled(t, "FindPublicByUserID", mock.Anything)
}

func TestGetFriendPublicCategoriesFriendSeesPublicOnly(t *testing.T) {
	categoryRepo, _, friendshipRepo, _, svc := newCategoryFixture()

	viewerID := uuid.New()
	ownerID := uuid.New()
	id1, id2 := models.OrderedPair(viewerID, ownerID)

	friendshipRepo.On("FindByPair", id1, id2).Return(&models.Friendship{
		User1ID: id1,
		User2ID: id2,
		Status:  models.FriendshipStatusAccepted,
	}, nil).Once()
	categoryRepo.On("FindPublicByUserID", ownerID).Return([]*models.Category{
		{Name: "Public"},
	}, nil).Once()

	categories, err := svc.GetFriendPublicCategories(viewerID, ownerID)

	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Public", categories[0].Name)
	categoryRepo.AssertNotCalled(t, "FindByUserID", mock.Anything)
}

func TestGetFriendPublicCategoriesStrangerDenied(t *testing.T) {
	categoryRepo, _, friendshipRepo, _, svc := newCategoryFixture()

	viewerID := uuid.New()
	ownerID := uuid.New()
	id1, id2 := models.OrderedPair(viewerID, ownerID)

	friendshipRepo.On("FindByPair", id1, id2).Return(nil, nil).Once()

	_, err := svc.GetFriendPublicCategories(viewerID, ownerID)

	require.Error(t, err)
	assert.Equal(t, "access denied", err.Error())
	categoryRepo.AssertNotCalled(t, "FindPublicByUserID", mock.Anything)
}
