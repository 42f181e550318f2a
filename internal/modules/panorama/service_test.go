package panorama

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"museumbackend/internal/assets"
	"museumbackend/internal/domain"
	"museumbackend/internal/pkg/apperr"
	"museumbackend/internal/repository"
)

type MockPanoramaRepository struct {
	mock.Mock
}

func (m *MockPanoramaRepository) GetAll(ctx context.Context, f repository.PanoramaFilters) ([]domain.Panorama, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Panorama), args.Error(1)
}

func (m *MockPanoramaRepository) Count(ctx context.Context, f repository.PanoramaFilters) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPanoramaRepository) GetByID(ctx context.Context, id string) (*domain.Panorama, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Panorama), args.Error(1)
}

func (m *MockPanoramaRepository) Create(ctx context.Context, p *domain.Panorama) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPanoramaRepository) Update(ctx context.Context, p *domain.Panorama) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPanoramaRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockHotspotRemover struct {
	mock.Mock
}

func (m *MockHotspotRemover) DeleteByPanorama(ctx context.Context, panoramaID string) error {
	args := m.Called(ctx, panoramaID)
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

func TestService_Create_RollsBackImageOnPersistFailure(t *testing.T) {
	panoramas := new(MockPanoramaRepository)
	hotspots := new(MockHotspotRemover)
	store := new(MockStore)

	store.On("Upload", mock.Anything, mock.Anything, "museum/panoramas", mock.Anything).
		Return(&assets.Object{URL: "/static/room.jpg", Handle: "museum/panoramas/room.jpg"}, nil)
	store.On("Delete", mock.Anything, "museum/panoramas/room.jpg").Return(nil)
	panoramas.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	service := NewService(panoramas, hotspots, assets.NewCoordinator(store), nil)

	_, err := service.Create(context.Background(), CreatePanoramaRequest{
		Title:    "Salle d'art moderne",
		RoomType: domain.RoomModernArt,
	}, []byte("jpg"))

	assert.Equal(t, apperr.KindPersistenceFailed, apperr.KindOf(err))
	store.AssertCalled(t, "Delete", mock.Anything, "museum/panoramas/room.jpg")
}

func TestService_Create_Success(t *testing.T) {
	panoramas := new(MockPanoramaRepository)
	hotspots := new(MockHotspotRemover)
	store := new(MockStore)

	panoramas.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(panoramas, hotspots, assets.NewCoordinator(store), nil)

	p, err := service.Create(context.Background(), CreatePanoramaRequest{
		Title:    "Salle d'histoire",
		RoomType: domain.RoomHistory,
	}, nil)

	assert.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.RoomHistory, p.RoomType)
	assert.Nil(t, p.ImageURL)
}

func TestService_Delete_RemovesHotspotsBeforeRoom(t *testing.T) {
	panoramas := new(MockPanoramaRepository)
	hotspots := new(MockHotspotRemover)
	store := new(MockStore)

	img := "/static/uploads/museum/panoramas/room.jpg"
	panoramas.On("GetByID", mock.Anything, "p1").
		Return(&domain.Panorama{ID: "p1", Title: "Salle", ImageURL: &img}, nil)

	var order []string
	hotspots.On("DeleteByPanorama", mock.Anything, "p1").
		Run(func(mock.Arguments) { order = append(order, "hotspots") }).
		Return(nil)
	panoramas.On("Delete", mock.Anything, "p1").
		Run(func(mock.Arguments) { order = append(order, "panorama") }).
		Return(nil)
	store.On("HandleFromURL", img).Return("museum/panoramas/room.jpg", true)
	store.On("Delete", mock.Anything, "museum/panoramas/room.jpg").
		Run(func(mock.Arguments) { order = append(order, "image") }).
		Return(nil)

	service := NewService(panoramas, hotspots, assets.NewCoordinator(store), nil)

	err := service.Delete(context.Background(), "p1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"hotspots", "panorama", "image"}, order)
}

func TestService_Delete_ToleratesImageCleanupFailure(t *testing.T) {
	panoramas := new(MockPanoramaRepository)
	hotspots := new(MockHotspotRemover)
	store := new(MockStore)

	img := "/static/room.jpg"
	panoramas.On("GetByID", mock.Anything, "p1").
		Return(&domain.Panorama{ID: "p1", ImageURL: &img}, nil)
	hotspots.On("DeleteByPanorama", mock.Anything, "p1").Return(nil)
	panoramas.On("Delete", mock.Anything, "p1").Return(nil)
	store.On("HandleFromURL", img).Return("room.jpg", true)
	store.On("Delete", mock.Anything, "room.jpg").Return(errors.New("network down"))

	service := NewService(panoramas, hotspots, assets.NewCoordinator(store), nil)

	err := service.Delete(context.Background(), "p1")

	assert.NoError(t, err)
}

func TestService_Delete_UnknownRoom(t *testing.T) {
	panoramas := new(MockPanoramaRepository)
	hotspots := new(MockHotspotRemover)
	store := new(MockStore)

	panoramas.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(panoramas, hotspots, assets.NewCoordinator(store), nil)

	err := service.Delete(context.Background(), "missing")

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	hotspots.AssertNotCalled(t, "DeleteByPanorama", mock.Anything, mock.Anything)
}
