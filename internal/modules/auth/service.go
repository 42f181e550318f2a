package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"museumbackend/internal/domain"
	"museumbackend/internal/pkg/apperr"
)

type jwtService interface {
	GenerateToken(userID, role string) (string, error)
}

type Service struct {
	users UserRepository
	jwt   jwtService
}

type LoginResult struct {
	User  *domain.User
	Token string
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindUnauthorized, "invalid credentials")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "loading user failed", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.New(apperr.KindUnauthorized, "invalid credentials")
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "signing token failed", err)
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "user not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "loading user failed", err)
	}
	user.PasswordHash = ""
	return user, nil
}
