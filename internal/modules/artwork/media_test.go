package artwork

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"museumbackend/internal/assets"
	"museumbackend/internal/domain"
	"museumbackend/internal/pkg/apperr"
)

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) GetByID(ctx context.Context, id string) (*domain.ArtworkMedia, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArtworkMedia), args.Error(1)
}

func (m *MockMediaRepository) Create(ctx context.Context, media *domain.ArtworkMedia) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *MockMediaRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMediaRepository) ListByArtwork(ctx context.Context, artworkID string) ([]domain.ArtworkMedia, error) {
	args := m.Called(ctx, artworkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArtworkMedia), args.Error(1)
}

func TestMediaService_Add_RoutesByType(t *testing.T) {
	media := new(MockMediaRepository)
	artworks := new(MockArtworkRepository)
	store := new(MockStore)

	artworks.On("GetByID", mock.Anything, "aw1").Return(&domain.Artwork{ID: "aw1", Title: "Tabaski"}, nil)
	store.On("Upload", mock.Anything, mock.Anything, "museum/artworks/audios", mock.Anything).
		Return(&assets.Object{URL: "/static/guide.mp3", Handle: "museum/artworks/audios/guide.mp3"}, nil)
	media.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewMediaService(media, artworks, assets.NewCoordinator(store), nil)

	m, err := service.Add(context.Background(), "aw1", domain.MediaAudio, []byte("mp3"))

	assert.NoError(t, err)
	assert.Equal(t, domain.MediaAudio, m.Type)
	assert.Equal(t, "/static/guide.mp3", m.URL)
}

func TestMediaService_Add_PersistFailureDeletesUpload(t *testing.T) {
	media := new(MockMediaRepository)
	artworks := new(MockArtworkRepository)
	store := new(MockStore)

	artworks.On("GetByID", mock.Anything, "aw1").Return(&domain.Artwork{ID: "aw1", Title: "Tabaski"}, nil)
	store.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&assets.Object{URL: "/static/img.png", Handle: "museum/artworks/images/img.png"}, nil)
	store.On("Delete", mock.Anything, "museum/artworks/images/img.png").Return(nil)
	media.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	service := NewMediaService(media, artworks, assets.NewCoordinator(store), nil)

	_, err := service.Add(context.Background(), "aw1", domain.MediaImage, []byte("png"))

	assert.Equal(t, apperr.KindPersistenceFailed, apperr.KindOf(err))
	store.AssertCalled(t, "Delete", mock.Anything, "museum/artworks/images/img.png")
}

func TestMediaService_Add_RejectsEmptyFile(t *testing.T) {
	media := new(MockMediaRepository)
	artworks := new(MockArtworkRepository)
	store := new(MockStore)

	artworks.On("GetByID", mock.Anything, "aw1").Return(&domain.Artwork{ID: "aw1"}, nil)

	service := NewMediaService(media, artworks, assets.NewCoordinator(store), nil)

	_, err := service.Add(context.Background(), "aw1", domain.MediaImage, nil)

	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMediaService_Delete_RemovesRecordThenAsset(t *testing.T) {
	media := new(MockMediaRepository)
	artworks := new(MockArtworkRepository)
	store := new(MockStore)

	media.On("GetByID", mock.Anything, "m1").
		Return(&domain.ArtworkMedia{ID: "m1", ArtworkID: "aw1", Type: domain.MediaImage, URL: "/static/uploads/museum/artworks/images/img.png"}, nil)
	media.On("Delete", mock.Anything, "m1").Return(nil)
	store.On("HandleFromURL", "/static/uploads/museum/artworks/images/img.png").
		Return("museum/artworks/images/img.png", true)
	store.On("Delete", mock.Anything, "museum/artworks/images/img.png").Return(nil)

	service := NewMediaService(media, artworks, assets.NewCoordinator(store), nil)

	err := service.Delete(context.Background(), "m1")

	assert.NoError(t, err)
	store.AssertCalled(t, "Delete", mock.Anything, "museum/artworks/images/img.png")
}

func TestMediaService_Delete_ToleratesAssetCleanupFailure(t *testing.T) {
	media := new(MockMediaRepository)
	artworks := new(MockArtworkRepository)
	store := new(MockStore)

	media.On("GetByID", mock.Anything, "m1").
		Return(&domain.ArtworkMedia{ID: "m1", ArtworkID: "aw1", URL: "/static/img.png"}, nil)
	media.On("Delete", mock.Anything, "m1").Return(nil)
	store.On("HandleFromURL", "/static/img.png").Return("img.png", true)
	store.On("Delete", mock.Anything, "img.png").Return(errors.New("network down"))

	service := NewMediaService(media, artworks, assets.NewCoordinator(store), nil)

	err := service.Delete(context.Background(), "m1")

	assert.NoError(t, err)
}
