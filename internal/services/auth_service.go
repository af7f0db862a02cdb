package services

import (
	"errors"
	"sync/atomic"

	"minimarket/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("credenciales incorrectas")

type AuthService struct {
	Users *repos.UserRepo

	logins atomic.Int64 // successful logins since startup, shown on the greeting page
}

func NewAuthService(users *repos.UserRepo) *AuthService {
	return &AuthService{Users: users}
}

func (s *AuthService) Login(username, password string) error {
	u, err := s.Users.ByUsername(username)
	if err != nil {
		return ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return ErrBadCreds
	}
	s.logins.Add(1)
	return nil
}

func (s *AuthService) Logins() int64 { return s.logins.Load() }
