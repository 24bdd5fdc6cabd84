package serviceimpl_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/liuxinyuan2000/nebula-api/application/serviceimpl"
	"github.com/liuxinyuan2000/nebula-api/domain/models"
)

func TestSetThemeDeactivatesPrevious(t *testing.T) {
	themeRepo := new(mockOutingThemeRepository)
	svc := serviceimpl.NewOutingThemeService(themeRepo)

	userID := uuid.New()

	themeRepo.On("DeactivateByUserID", userID).Return(nil).Once()
	themeRepo.On("Create", mock.MatchedBy(func(theme *models.UserOutingTheme) bool {
		return theme.UserID == userID && theme.IsActive && theme.ThemeName == "Cozy cafes"
	})).Return(nil).Once()

	theme, err := svc.SetTheme(userID, "Cozy cafes", "Looking for quiet spots", nil)

	require.NoError(t, err)
	assert.True(t, theme.IsActive)
	themeRepo.AssertExpectations(t)
}

func TestSetThemeRejectsPastExpiry(t *testing.T) {
	themeRepo := new(mockOutingThemeRepository)
	svc := serviceimpl.NewOutingThemeService(themeRepo)

	past := time.Now().Add(-time.Hour)

	_, err := svc.SetTheme(uuid.New(), "Late night ramen", "", &past)

	require.Error(t, err)
	themeRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSetThemeRequiresName(t *testing.T) {
	themeRepo := new(mockOutingThemeRepository)
	svc := serviceimpl.NewOutingThemeService(themeRepo)

	_, err := svc.SetTheme(uuid.New(), "", "", nil)

	require.Error(t, err)
	themeRepo.AssertNotCalled(t, "DeactivateByUserID", mock.Anything)
}

func TestGetActiveThemeLazyExpiry(t *testing.T) {
	themeRepo := new(mockOutingThemeRepository)
	svc := serviceimpl.NewOutingThemeService(themeRepo)

	userID := uuid.New()
	themeID := uuid.New()
	expired := time.Now().Add(-time.Minute)

	// processor ยังไม่ทันปิดธีมที่หมดอายุ - service ต้องปิดให้เองตอนอ่าน
	themeRepo.On("FindActiveByUserID", userID).Return(&models.UserOutingTheme{
		ID:        themeID,
		UserID:    userID,
		IsActive:  true,
		ExpiresAt: &expired,
	}, nil).Once()
	themeRepo.On("DeactivateByID", themeID).Return(nil).Once()

	theme, err := svc.GetActiveTheme(userID)

	require.NoError(t, err)
	assert.Nil(t, theme)
	themeRepo.AssertExpectations(t)
}

func TestGetActiveThemeStillValid(t *testing.T) {
	themeRepo := new(mockOutingThemeRepository)
	svc := serviceimpl.NewOutingThemeService(themeRepo)

	userID := uuid.New()
	future := time.Now().Add(time.Hour)

	themeRepo.On("FindActiveByUserID", userID).Return(&models.UserOutingTheme{
		ID:        uuid.New(),
		UserID:    userID,
		ThemeName: "Art museums",
		IsActive:  true,
		ExpiresAt: &future,
	}, nil).Once()

	theme, err := svc.GetActiveTheme(userID)

	require.NoError(t, err)
	require.NotNil(t, theme)
	assert.Equal(t, "Art museums", theme.ThemeName)
	themeRepo.AssertNotCalled(t, "DeactivateByID", mock.Anything)
}

func TestExpireOverdueThemes(t *testing.T) {
	themeRepo := new(mockOutingThemeRepository)
	svc := serviceimpl.NewOutingThemeService(themeRepo)

	themeRepo.On("DeactivateExpired", mock.AnythingOfType("time.Time")).Return(int64(2), nil).Once()

	count, err := svc.ExpireOverdueThemes()

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
