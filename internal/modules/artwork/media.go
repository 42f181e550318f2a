package artwork

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"museumbackend/internal/assets"
	"museumbackend/internal/domain"
	"museumbackend/internal/modules/events"
	"museumbackend/internal/pkg/apperr"
)

var mediaFolders = map[domain.MediaType]string{
	domain.MediaImage: "museum/artworks/images",
	domain.MediaAudio: "museum/artworks/audios",
	domain.MediaVideo: "museum/artworks/videos",
}

// MediaService attaches image, audio and video files to artworks.
type MediaService struct {
	media    MediaRepository
	artworks ArtworkRepository
	uploads  *assets.Coordinator
	pub      events.Publisher
}

func NewMediaService(media MediaRepository, artworks ArtworkRepository, uploads *assets.Coordinator, pub events.Publisher) *MediaService {
	return &MediaService{media: media, artworks: artworks, uploads: uploads, pub: pub}
}

// Add uploads the file first, then persists the record. A failed insert
// deletes the uploaded file.
func (s *MediaService) Add(ctx context.Context, artworkID string, mediaType domain.MediaType, content []byte) (*domain.ArtworkMedia, error) {
	artwork, err := s.artworks.GetByID(ctx, artworkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "artwork not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "loading artwork failed", err)
	}

	if !mediaType.Valid() {
		return nil, apperr.Newf(apperr.KindValidation, "invalid media type %q", mediaType)
	}
	if len(content) == 0 {
		return nil, apperr.New(apperr.KindValidation, "media file is required")
	}

	led := assets.NewLedger()

	url, err := s.uploads.Upload(ctx, led, content, mediaFolders[mediaType], assets.Key("media", artwork.Title))
	if err != nil {
		return nil, err
	}

	m := &domain.ArtworkMedia{
		ID:        uuid.NewString(),
		ArtworkID: artworkID,
		Type:      mediaType,
		URL:       url,
	}

	if err := s.media.Create(ctx, m); err != nil {
		s.uploads.Rollback(ctx, led)
		return nil, apperr.Wrap(apperr.KindPersistenceFailed, "creating media failed", err)
	}

	s.publish("media_added", artworkID)
	return m, nil
}

// Delete removes the record first, then the stored file. A failed file
// deletion leaves an orphan asset, which is preferable to a record
// pointing at nothing.
func (s *MediaService) Delete(ctx context.Context, id string) error {
	m, err := s.media.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound, "media not found")
		}
		return apperr.Wrap(apperr.KindInternal, "loading media failed", err)
	}

	if err := s.media.Delete(ctx, id); err != nil {
		return apperr.Wrap(apperr.KindPersistenceFailed, "deleting media failed", err)
	}

	if err := s.uploads.DeleteByURL(ctx, m.URL); err != nil {
		log.Printf("media_asset_cleanup_failed id=%s err=%v", id, err)
	}

	s.publish("media_deleted", m.ArtworkID)
	return nil
}

func (s *MediaService) ListByArtwork(ctx context.Context, artworkID string) ([]domain.ArtworkMedia, error) {
	if _, err := s.artworks.GetByID(ctx, artworkID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "artwork not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "loading artwork failed", err)
	}

	media, err := s.media.ListByArtwork(ctx, artworkID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "listing media failed", err)
	}
	return media, nil
}

func (s *MediaService) publish(action, artworkID string) {
	if s.pub != nil {
		s.pub.Publish("artwork", action, artworkID)
	}
}
