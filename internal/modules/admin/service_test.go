package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"museumbackend/internal/assets"
	"museumbackend/internal/domain"
	"museumbackend/internal/pkg/apperr"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) CreateAdmin(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Upload(ctx context.Context, content []byte, folder, key string) (*assets.Object, error) {
	args := m.Called(ctx, content, folder, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assets.Object), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}

func (m *MockStore) HandleFromURL(url string) (string, bool) {
	args := m.Called(url)
	return args.String(0), args.Bool(1)
}

func TestService_CreateAdmin_Success(t *testing.T) {
	users := new(MockUserRepository)
	store := new(MockStore)

	users.On("ExistsByEmail", mock.Anything, "admin@musee.sn").Return(false, nil)

	var created *domain.User
	users.On("CreateAdmin", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.User)
		}).
		Return(nil)

	service := NewService(users, assets.NewCoordinator(store), 20*time.Second)

	user, err := service.CreateAdmin(context.Background(), CreateAdminRequest{
		Email:    "Admin@Musee.SN",
		Password: "secret-password",
		Nom:      "Diop",
		Prenom:   "Aminata",
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "admin@musee.sn", user.Email)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.Empty(t, user.PasswordHash)
	// the stored hash verifies against the plain password
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret-password")))
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateAdmin_DuplicateEmailSkipsUpload(t *testing.T) {
	users := new(MockUserRepository)
	store := new(MockStore)

	users.On("ExistsByEmail", mock.Anything, "admin@musee.sn").Return(true, nil)

	service := NewService(users, assets.NewCoordinator(store), 20*time.Second)

	_, err := service.CreateAdmin(context.Background(), CreateAdminRequest{
		Email:    "admin@musee.sn",
		Password: "secret-password",
		Nom:      "Diop",
		Prenom:   "Aminata",
	}, []byte("img"))

	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "CreateAdmin", mock.Anything, mock.Anything)
}

func TestService_CreateAdmin_TxFailureRollsBackAvatar(t *testing.T) {
	users := new(MockUserRepository)
	store := new(MockStore)

	users.On("ExistsByEmail", mock.Anything, "admin@musee.sn").Return(false, nil)
	store.On("Upload", mock.Anything, mock.Anything, "museum/avatars", mock.Anything).
		Return(&assets.Object{URL: "/static/a.png", Handle: "museum/avatars/a.png"}, nil)
	store.On("Delete", mock.Anything, "museum/avatars/a.png").Return(nil)
	users.On("CreateAdmin", mock.Anything, mock.Anything).Return(errors.New("tx timeout"))

	service := NewService(users, assets.NewCoordinator(store), 20*time.Second)

	_, err := service.CreateAdmin(context.Background(), CreateAdminRequest{
		Email:    "admin@musee.sn",
		Password: "secret-password",
		Nom:      "Diop",
		Prenom:   "Aminata",
	}, []byte("img"))

	assert.Equal(t, apperr.KindPersistenceFailed, apperr.KindOf(err))
	store.AssertCalled(t, "Delete", mock.Anything, "museum/avatars/a.png")
}
