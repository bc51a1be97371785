package service

import (
	"homework_check_backend/internal/config"
	"homework_check_backend/internal/util"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AuthService checks the shared teacher password and issues teacher tokens.
type AuthService struct {
	mu           sync.RWMutex
	passwordHash []byte
	secret       string
	expire       time.Duration
}

func NewAuthService(cfg *config.Config) *AuthService {
	s := &AuthService{}
	s.Reload(cfg)
	return s
}

type LoginReq struct {
	Password string `json:"password" binding:"required"`
}

// Reload swaps in credentials from a freshly loaded config.
func (s *AuthService) Reload(cfg *config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passwordHash = []byte(cfg.Auth.TeacherPasswordHash)
	s.secret = cfg.JWT.Secret
	s.expire = cfg.JWT.ExpireTime
}

func (s *AuthService) Login(password string) (string, error) {
	s.mu.RLock()
	hash, secret, expire := s.passwordHash, s.secret, s.expire
	s.mu.RUnlock()

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return "", util.ErrInvalidPassword
	}
	return util.GenerateJWT(util.RoleTeacher, secret, expire)
}

func (s *AuthService) ParseToken(token string) (*util.Claims, error) {
	s.mu.RLock()
	secret := s.secret
	s.mu.RUnlock()
	return util.ParseJWT(token, secret)
}
