package service

import (
	"homework_check_backend/internal/config"
	"homework_check_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authConfig(t *testing.T, password, secret string) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &config.Config{
		JWT:  config.JWTConfig{Secret: secret, ExpireTime: time.Hour},
		Auth: config.AuthConfig{TeacherPasswordHash: string(hash)},
	}
}

func TestAuthLogin(t *testing.T) {
	auth := NewAuthService(authConfig(t, "s3cret", "secret-one"))

	_, err := auth.Login("wrong")
	assert.ErrorIs(t, err, util.ErrInvalidPassword)

	token, err := auth.Login("s3cret")
	require.NoError(t, err)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, util.RoleTeacher, claims.Role)
}

func TestAuthReload(t *testing.T) {
	auth := NewAuthService(authConfig(t, "old", "secret-one"))
	oldToken, err := auth.Login("old")
	require.NoError(t, err)

	auth.Reload(authConfig(t, "new", "secret-two"))

	_, err = auth.Login("old")
	assert.ErrorIs(t, err, util.ErrInvalidPassword)
	_, err = auth.Login("new")
	assert.NoError(t, err)

	// 旧密钥签发的 token 失效
	_, err = auth.ParseToken(oldToken)
	assert.Error(t, err)
}
