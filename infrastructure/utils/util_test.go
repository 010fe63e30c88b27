package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"

	"youtube-clone/infrastructure/utils"
)

func TestGetCurrentTime(t *testing.T) {
	now := utils.GetCurrentTime()
	assert.Equal(t, time.UTC, now.Location())
}

func TestGenerateToken(t *testing.T) {
	token, err := utils.GenerateToken(map[string]interface{}{
		"_id": "64f0c3a2e1b2c3d4e5f60718",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "test-secret")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "64f0c3a2e1b2c3d4e5f60718", claims["_id"])
}

func TestGenerateToken_WrongSecretRejected(t *testing.T) {
	token, err := utils.GenerateToken(map[string]interface{}{
		"_id": "64f0c3a2e1b2c3d4e5f60718",
	}, "test-secret")
	assert.NoError(t, err)

	_, err = jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
