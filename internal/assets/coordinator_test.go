package assets

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Upload(ctx context.Context, content []byte, folder, key string) (*Object, error) {
	args := m.Called(ctx, content, folder, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Object), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}

func (m *MockStore) HandleFromURL(url string) (string, bool) {
	args := m.Called(url)
	return args.String(0), args.Bool(1)
}

func TestCoordinator_Upload_StoreFailureLeavesLedgerEmpty(t *testing.T) {
	store := new(MockStore)
	store.On("Upload", mock.Anything, mock.Anything, "museum/avatars", mock.Anything).
		Return(nil, errors.New("disk full"))

	coord := NewCoordinator(store)
	led := NewLedger()

	_, err := coord.Upload(context.Background(), led, []byte("img"), "museum/avatars", "admin_x_1234")

	assert.Error(t, err)
	assert.Equal(t, 0, led.Len())
}

func TestCoordinator_Rollback_DeletesEveryRecordedAsset(t *testing.T) {
	store := new(MockStore)
	store.On("Upload", mock.Anything, mock.Anything, mock.Anything, "a").
		Return(&Object{URL: "/static/a.png", Handle: "museum/a.png"}, nil)
	store.On("Upload", mock.Anything, mock.Anything, mock.Anything, "b").
		Return(&Object{URL: "/static/b.png", Handle: "museum/b.png"}, nil)
	store.On("Delete", mock.Anything, "museum/a.png").Return(nil)
	store.On("Delete", mock.Anything, "museum/b.png").Return(nil)

	coord := NewCoordinator(store)
	led := NewLedger()

	_, err := coord.Upload(context.Background(), led, []byte("x"), "museum", "a")
	assert.NoError(t, err)
	_, err = coord.Upload(context.Background(), led, []byte("y"), "museum", "b")
	assert.NoError(t, err)
	assert.Equal(t, 2, led.Len())

	coord.Rollback(context.Background(), led)

	store.AssertCalled(t, "Delete", mock.Anything, "museum/a.png")
	store.AssertCalled(t, "Delete", mock.Anything, "museum/b.png")
	assert.Equal(t, 0, led.Len())
}

func TestCoordinator_Rollback_SwallowsDeletionFailures(t *testing.T) {
	store := new(MockStore)
	store.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&Object{URL: "/static/a.png", Handle: "museum/a.png"}, nil)
	store.On("Delete", mock.Anything, "museum/a.png").Return(errors.New("network down"))

	coord := NewCoordinator(store)
	led := NewLedger()

	_, err := coord.Upload(context.Background(), led, []byte("x"), "museum", "a")
	assert.NoError(t, err)

	// must not panic and must drain the ledger even when deletes fail
	coord.Rollback(context.Background(), led)
	assert.Equal(t, 0, led.Len())
}

func TestCoordinator_DeleteByURL_InvertsURL(t *testing.T) {
	store := new(MockStore)
	store.On("HandleFromURL", "/static/uploads/museum/a.png").Return("museum/a.png", true)
	store.On("Delete", mock.Anything, "museum/a.png").Return(nil)

	coord := NewCoordinator(store)

	err := coord.DeleteByURL(context.Background(), "/static/uploads/museum/a.png")

	assert.NoError(t, err)
	store.AssertCalled(t, "Delete", mock.Anything, "museum/a.png")
}

func TestCoordinator_DeleteByURL_IgnoresForeignURLs(t *testing.T) {
	store := new(MockStore)
	store.On("HandleFromURL", "https://elsewhere.example/a.png").Return("", false)

	coord := NewCoordinator(store)

	err := coord.DeleteByURL(context.Background(), "https://elsewhere.example/a.png")

	assert.NoError(t, err)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestKey_LowercasesAndJoinsParts(t *testing.T) {
	key := Key("Artist", "Iba", "Ndiaye")

	assert.True(t, strings.HasPrefix(key, "artist_iba_ndiaye_"))
	assert.NotEqual(t, key, Key("Artist", "Iba", "Ndiaye"))
}
