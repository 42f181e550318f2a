package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"museumbackend/internal/domain"
	"museumbackend/internal/pkg/apperr"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockJWT struct {
	mock.Mock
}

func (m *MockJWT) GenerateToken(userID, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func adminUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return &domain.User{
		ID:           "u1",
		Email:        "admin@musee.sn",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	users.On("GetByEmail", mock.Anything, "admin@musee.sn").Return(adminUser(t, "secret"), nil)
	jwt.On("GenerateToken", "u1", "admin").Return("signed-token", nil)

	service := NewService(users, jwt)

	result, err := service.Login(context.Background(), LoginRequest{Email: " Admin@Musee.SN ", Password: "secret"})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Empty(t, result.User.PasswordHash)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	users.On("GetByEmail", mock.Anything, "nobody@musee.sn").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, jwt)

	_, err := service.Login(context.Background(), LoginRequest{Email: "nobody@musee.sn", Password: "secret"})

	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	jwt.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWT)

	users.On("GetByEmail", mock.Anything, "admin@musee.sn").Return(adminUser(t, "secret"), nil)

	service := NewService(users, jwt)

	_, err := service.Login(context.Background(), LoginRequest{Email: "admin@musee.sn", Password: "wrong"})

	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	jwt.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}
