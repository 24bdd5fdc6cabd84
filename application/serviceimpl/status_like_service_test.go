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

func TestToggleLikeAddsWhenMissing(t *testing.T) {
	likeRepo := new(mockStatusLikeRepository)
	userRepo := new(mockUserRepository)
	svc := serviceimpl.NewStatusLikeService(likeRepo, userRepo)

	likerID := uuid.New()
	targetID := uuid.New()

	userRepo.On("FindByID", targetID).Return(&models.User{ID: targetID}, nil).Once()
	likeRepo.On("FindByPair", likerID, targetID).Return(nil, nil).Once()
	likeRepo.On("Create", mock.MatchedBy(func(l *models.StatusLike) bool {
		return l.LikerID == likerID && l.TargetUserID == targetID
	})).Return(nil).Once()
	likeRepo.On("CountByTargetUserID", targetID).Return(int64(1), nil).Once()

	hasLiked, count, err := svc.ToggleLike(likerID, targetID)

	require.NoError(t, err)
	assert.True(t, hasLiked)
	assert.Equal(t, int64(1), count)
	likeRepo.AssertExpectations(t)
}

func TestToggleLikeRemovesWhenPresent(t *testing.T) {
	likeRepo := new(mockStatusLikeRepository)
	userRepo := new(mockUserRepository)
	svc := serviceimpl.NewStatusLikeService(likeRepo, userRepo)

	likerID := uuid.New()
	targetID := uuid.New()

	userRepo.On("FindByID", targetID).Return(&models.User{ID: targetID}, nil).Once()
	likeRepo.On("FindByPair", likerID, targetID).Return(&models.StatusLike{
		ID:           uuid.New(),
		LikerID:      likerID,
		TargetUserID: targetID,
	}, nil).Once()
	likeRepo.On("DeleteByPair", likerID, targetID).Return(nil).Once()
	likeRepo.On("CountByTargetUserID", targetID).Return(int64(0), nil).Once()

	hasLiked, count, err := svc.ToggleLike(likerID, targetID)

	require.NoError(t, err)
	assert.False(t, hasLiked)
	assert.Equal(t, int64(0), count)
	likeRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestToggleLikeTwiceReturnsToOriginal(t *testing.T) {
	likeRepo := new(mockStatusLikeRepository)
	userRepo := new(mockUserRepository)
	svc := serviceimpl.NewStatusLikeService(likeRepo, userRepo)

	likerID := uuid.New()
	targetID := uuid.New()
	like := &models.StatusLike{ID: uuid.New(), LikerID: likerID, TargetUserID: targetID}

	userRepo.On("FindByID", targetID).Return(&models.User{ID: targetID}, nil).Twice()
	// ครั้งแรกยังไม่มี like ครั้งที่สองเจอแถวที่เพิ่งสร้าง
	likeRepo.On("FindByPair", likerID, targetID).Return(nil, nil).Once()
	likeRepo.On("Create", mock.AnythingOfType("*models.StatusLike")).Return(nil).Once()
	likeRepo.On("CountByTargetUserID", targetID).Return(int64(1), nil).Once()

	hasLiked, count, err := svc.ToggleLike(likerID, targetID)
	require.NoError(t, err)
	assert.True(t, hasLiked)
	assert.Equal(t, int64(1), count)

	likeRepo.On("FindByPair", likerID, targetID).Return(like, nil).Once()
	likeRepo.On("DeleteByPair", likerID, targetID).Return(nil).Once()
	likeRepo.On("CountByTargetUserID", targetID).Return(int64(0), nil).Once()

	hasLiked, count, err = svc.ToggleLike(likerID, targetID)
	require.NoError(t, err)
	assert.False(t, hasLiked)
	assert.Equal(t, int64(0), count)
	likeRepo.AssertExpectations(t)
}

func TestToggleLikeUnknownTarget(t *testing.T) {
	likeRepo := new(mockStatusLikeRepository)
	userRepo := new(mockUserRepository)
	svc := serviceimpl.NewStatusLikeService(likeRepo, userRepo)

	targetID := uuid.New()
	userRepo.On("FindByID", targetID).Return(nil, nil).Once()

	_, _, err := svc.ToggleLike(uuid.New(), targetID)

	require.Error(t, err)
	assert.Equal(t, "user not found", err.Error())
}

func TestGetLikeStatus(t *testing.T) {
	likeRepo := new(mockStatusLikeRepository)
	userRepo := new(mockUserRepository)
	svc := serviceimpl.NewStatusLikeService(likeRepo, userRepo)

	viewerID := uuid.New()
	targetID := uuid.New()

	likeRepo.On("CountByTargetUserID", targetID).Return(int64(3), nil).Once()
	likeRepo.On("FindByPair", viewerID, targetID).Return(&models.StatusLike{
		LikerID:      viewerID,
		TargetUserID: targetID,
	}, nil).Once()

	hasLiked, count, err := svc.GetLikeStatus(viewerID, targetID)

	require.NoError(t, err)
	assert.True(t, hasLiked)
	assert.Equal(t, int64(3), count)
}
