package utils_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuxinyuan2000/nebula-api/pkg/utils"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-password")
	require.NoError(t, err)

	// hash ต้องไม่ใช่ plaintext
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, utils.CheckPassword("s3cret-password", hash))
	assert.False(t, utils.CheckPassword("wrong-password", hash))
}

func TestCheckPasswordWithInvalidHash(t *testing.T) {
	assert.False(t, utils.CheckPassword("anything", "not-a-bcrypt-hash"))
}

func TestGenerateAndParseToken(t *testing.T) {
	userID := uuid.New()

	token, err := utils.GenerateToken(userID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := utils.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestParseTokenRejectsTamperedToken(t *testing.T) {
	token, err := utils.GenerateToken(uuid.New(), "bob")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = utils.ParseToken(tampered)
	assert.Error(t, err)
}
