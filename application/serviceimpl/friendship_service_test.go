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

func TestOrderedPairIsCanonical(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	x1, y1 := models.OrderedPair(a, b)
	x2, y2 := models.OrderedPair(b, a)

	// ลำดับ input ต้องไม่มีผลกับผลลัพธ์
	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
	assert.True(t, x1.String() < y1.String())
}

func TestAddFriendStoresCanonicalPair(t *testing.T) {
	friendshipRepo := new(mockFriendshipRepository)
	userRepo := new(mockUserRepository)
	svc := serviceimpl.NewFriendshipService(friendshipRepo, userRepo)

	userID := uuid.New()
	friendID := uuid.New()
	id1, id2 := models.OrderedPair(userID, friendID)

	userRepo.On("FindByID", friendID).Return(&models.User{ID: friendID}, nil).Once()
	friendshipRepo.On("FindByPair", id1, id2).Return(nil, nil).Once()
	friendshipRepo.On("Create", mock.MatchedBy(func(f *models.Friendship) bool {
		return f.User1ID == id1 && f.User2ID == id2 && f.Status == models.FriendshipStatusAccepted
	})).Return(nil).Once()

	friendship, err := svc.AddFriend(userID, friendID)

	require.NoError(t, err)
	assert.Equal(t, id1, friendship.User1ID)
	assert.Equal(t, id2, friendship.User2ID)
	friendshipRepo.AssertExpectations(t)
}

func TestAddFriendRejectsSelf(t *testing.T) {
	friendshipRepo := new(mockFriendshipRepository)
	userRepo := new(mockUserRepository)
	svc := serviceimpl.NewFriendshipService(friendshipRepo, userRepo)

	userID := uuid.New()

	_, err := svc.AddFriend(userID, userID)

	require.Error(t, err)
	assert.Equal(t, "cannot add yourself as a friend", err.Error())
	friendshipRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAddFriendRejectsDuplicate(t *testing.T) {
	friendshipRepo := new(mockFriendshipRepository)
	userRepo := new(mockUserRepository)
	svc := serviceimpl.NewFriendshipService(friendshipRepo, userRepo)

	userID := uuid.New()
	friendID := uuid.New()
	id1, id2 := models.OrderedPair(userID, friendID)

	userRepo.On("FindByID", friendID).Return(&models.User{ID: friendID}, nil).Once()
	friendshipRepo.On("FindByPair", id1, id2).Return(&models.Friendship{
		User1ID: id1,
		User2ID: id2,
		Status:  models.FriendshipStatusAccepted,
	}, nil).Once()

	_, err := svc.AddFriend(userID, friendID)

	require.Error(t, err)
	assert.Equal(t, "friendship already exists", err.Error())
	friendshipRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAddFriendUnknownTarget(t *testing.T) {
	friendshipRepo := new(mockFriendshipRepository)
	userRepo := new(mockUserRepository)
	svc := serviceimpl.NewFriendshipService(friendshipRepo, userRepo)

	userID := uuid.New()
	friendID := uuid.New()

	userRepo.On("FindByID", friendID).Return(nil, nil).Once()

	_, err := svc.AddFriend(userID, friendID)

	require.Error(t, err)
	assert.Equal(t, "user not found", err.Error())
}

func TestIsFriendIsSymmetric(t *testing.T) {
	friendshipRepo := new(mockFriendshipRepository)
	userRepo := new(mockUserRepository)
	svc := serviceimpl.NewFriendshipService(friendshipRepo, userRepo)

	a := uuid.New()
	b := uuid.New()
	id1, id2 := models.OrderedPair(a, b)

	friendshipRepo.On("FindByPair", id1, id2).Return(&models.Friendship{
		User1ID: id1,
		User2ID: id2,
		Status:  models.FriendshipStatusAccepted,
	}, nil).Twice()

	fromA, err := svc.IsFriend(a, b)
	require.NoError(t, err)
	fromB, err := svc.IsFriend(b, a)
	require.NoError(t, err)

	assert.True(t, fromA)
	assert.True(t, fromB)
}

func TestIsFriendSelfIsFalse(t *testing.T) {
	friendshipRepo := new(mockFriendshipRepository)
	userRepo := new(mockUserRepository)
	svc := serviceimpl.NewFriendshipService(friendshipRepo, userRepo)

	userID := uuid.New()

	isFriend, err := svc.IsFriend(userID, userID)

	require.NoError(t, err)
	assert.False(t, isFriend)
	friendshipRepo.AssertNotCalled(t, "FindByPair", mock.Anything, mock.Anything)
}

func TestCanViewStatus(t *testing.T) {
	friendshipRepo := new(mockFriendshipRepository)
	userRepo := new(mockUserRepository)
	svc := serviceimpl.NewFriendshipService(friendshipRepo, userRepo)

	owner := uuid.New()
	stranger := uuid.New()
	id1, id2 := models.OrderedPair(owner, stranger)

	// เจ้าของดูของตัวเองได้เสมอ ไม่ต้องเช็คฐานข้อมูล
	allowed, err := svc.CanViewStatus(owner, owner)
	require.NoError(t, err)
	assert.True(t, allowed)

	// คนนอกถูกปฏิเสธ
	friendshipRepo.On("FindByPair", id1, id2).Return(nil, nil).Once()
	allowed, err = svc.CanViewStatus(stranger, owner)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestCanViewStatusFriendAllowed(t *testing.T) {
	friendshipRepo := new(mockFriendshipRepository)
	userRepo := new(mockUserRepository)
	svc := serviceimpl.NewFriendshipService(friendshipRepo, userRepo)

	owner := uuid.New()
	friend := uuid.New()
	id1, id2 := models.OrderedPair(owner, friend)

	friendshipRepo.On("FindByPair", id1, id2).Return(&models.Friendship{
		User1ID: id1,
		User2ID: id2,
		Status:  models.FriendshipStatusAccepted,
	}, nil).Once()

	allowed, err := svc.CanViewStatus(friend, owner)

	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRemoveFriendRevokesAccess(t *testing.T) {
	friendshipRepo := new(mockFriendshipRepository)
	userRepo := new(mockUserRepository)
	svc := serviceimpl.NewFriendshipService(friendshipRepo, userRepo)

	a := uuid.New()
	b := uuid.New()
	id1, id2 := models.OrderedPair(a, b)

	friendshipRepo.On("FindByPair", id1, id2).Return(&models.Friendship{
		User1ID: id1,
		User2ID: id2,
		Status:  models.FriendshipStatusAccepted,
	}, nil).Once()
	friendshipRepo.On("DeleteByPair", id1, id2).Return(nil).Once()

	require.NoError(t, svc.RemoveFriend(a, b))

	// หลังลบแล้ว gate ต้องปิดทันที
	friendshipRepo.On("FindByPair", id1, id2).Return(nil, nil).Once()
	allowed, err := svc.CanViewStatus(b, a)
	require.NoError(t, err)
	assert.False(t, allowed)
	friendshipRepo.AssertExpectations(t)
}

func TestRemoveFriendNotFound(t *testing.T) {
	friendshipRepo := new(mockFriendshipRepository)
	userRepo := new(mockUserRepository)
	svc := serviceimpl.NewFriendshipService(friendshipRepo, userRepo)

	a := uuid.New()
	b := uuid.New()
	id1, id2 := models.OrderedPair(a, b)

	friendshipRepo.On("FindByPair", id1, id2).Return(nil, nil).Once()

	err := svc.RemoveFriend(a, b)

	require.Error(t, err)
	assert.Equal(t, "friendship not found", err.Error())
	friendshipRepo.AssertNotCalled(t, "DeleteByPair", mock.Anything, mock.Anything)
}

func TestGetFriendsResolvesOtherSide(t *testing.T) {
	friendshipRepo := new(mockFriendshipRepository)
	userRepo := new(mockUserRepository)
	svc := serviceimpl.NewFriendshipService(friendshipRepo, userRepo)

	userID := uuid.New()
	friendID := uuid.New()
	id1, id2 := models.OrderedPair(userID, friendID)

	friendshipRepo.On("FindByUserID", userID).Return([]*models.Friendship{
		{User1ID: id1, User2ID: id2, Status: models.FriendshipStatusAccepted},
	}, nil).Once()
	userRepo.On("FindByID", friendID).Return(&models.User{ID: friendID, Username: "friend"}, nil).Once()

	friends, err := svc.GetFriends(userID)

	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, friendID, friends[0].ID)
}
