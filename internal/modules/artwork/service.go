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
	"museumbackend/internal/pkg/status"
	"museumbackend/internal/repository"
)

// activeMachine is the artwork soft-delete lifecycle over the boolean
// is_active flag.
var activeMachine = status.NewMachine(map[string]status.Edge[bool]{
	"delete":  {From: true, To: false},
	"restore": {From: false, To: true},
}, func(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
})

type Service struct {
	artworks ArtworkRepository
	artists  ArtistReader
	qr       qrGenerator
	uploads  *assets.Coordinator
	pub      events.Publisher
}

type ListResult struct {
	Artworks []domain.Artwork `json:"artworks"`
	Total    int64            `json:"total"`
}

type StatusResult struct {
	ID       string `json:"id"`
	IsActive bool   `json:"is_active"`
}

func NewService(artworks ArtworkRepository, artists ArtistReader, qr qrGenerator, uploads *assets.Coordinator, pub events.Publisher) *Service {
	return &Service{artworks: artworks, artists: artists, qr: qr, uploads: uploads, pub: pub}
}

func (s *Service) List(ctx context.Context, f repository.ArtworkFilters) (*ListResult, error) {
	artworks, err := s.artworks.GetAll(ctx, f)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "listing artworks failed", err)
	}
	total, err := s.artworks.Count(ctx, f)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "counting artworks failed", err)
	}
	return &ListResult{Artworks: artworks, Total: total}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Artwork, error) {
	artwork, err := s.artworks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "artwork not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "loading artwork failed", err)
	}
	return artwork, nil
}

// Create generates and uploads the QR image before inserting the record,
// so a stored artwork always references a valid code. The ID is drawn
// up front to make that ordering possible; a failed insert deletes the
// uploaded image.
func (s *Service) Create(ctx context.Context, req CreateArtworkRequest) (*domain.Artwork, error) {
	if _, err := s.artists.GetByID(ctx, req.ArtistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "artist not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "loading artist failed", err)
	}

	id := uuid.NewString()
	led := assets.NewLedger()

	imageURL, err := s.qr.GenerateForArtwork(ctx, led, id, req.Title)
	if err != nil {
		return nil, err
	}

	artwork := &domain.Artwork{
		ID:             id,
		Title:          req.Title,
		ArtistID:       req.ArtistID,
		QRCode:         "artwork_" + id,
		QRCodeImageURL: &imageURL,
		IsActive:       true,
	}

	if err := s.artworks.Create(ctx, artwork); err != nil {
		s.uploads.Rollback(ctx, led)
		return nil, apperr.Wrap(apperr.KindPersistenceFailed, "creating artwork failed", err)
	}

	s.publish("created", artwork.ID)
	return artwork, nil
}

// Update applies partial changes. A title change invalidates the encoded
// QR payload, so a new image is generated and the record must durably
// reference it before the old image is removed. The scan value itself
// never changes, only the rendered asset.
func (s *Service) Update(ctx context.Context, id string, req UpdateArtworkRequest) (*domain.Artwork, error) {
	artwork, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ArtistID != "" && req.ArtistID != artwork.ArtistID {
		if _, err := s.artists.GetByID(ctx, req.ArtistID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.New(apperr.KindNotFound, "artist not found")
			}
			return nil, apperr.Wrap(apperr.KindInternal, "loading artist failed", err)
		}
		artwork.ArtistID = req.ArtistID
	}

	led := assets.NewLedger()
	titleChanged := req.Title != "" && req.Title != artwork.Title
	oldImageURL := artwork.QRCodeImageURL

	if titleChanged {
		artwork.Title = req.Title
		imageURL, err := s.qr.GenerateForArtwork(ctx, led, artwork.ID, artwork.Title)
		if err != nil {
			return nil, err
		}
		artwork.QRCodeImageURL = &imageURL
	}

	// Preloaded relations would be written back by Save, reverting the
	// foreign key to the stale Artist struct.
	artwork.Artist = nil
	artwork.Translations = nil
	artwork.Media = nil

	if err := s.artworks.Update(ctx, artwork); err != nil {
		s.uploads.Rollback(ctx, led)
		return nil, apperr.Wrap(apperr.KindPersistenceFailed, "updating artwork failed", err)
	}

	if titleChanged && oldImageURL != nil {
		if err := s.uploads.DeleteByURL(ctx, *oldImageURL); err != nil {
			log.Printf("artwork_qr_cleanup_failed id=%s err=%v", artwork.ID, err)
		}
	}

	s.publish("updated", artwork.ID)
	return artwork, nil
}

// SetStatus runs one lifecycle action with a write-time guard; see the
// artist service for the race this closes.
func (s *Service) SetStatus(ctx context.Context, id, action string) (*StatusResult, error) {
	artwork, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := activeMachine.Resolve(action, artwork.IsActive)
	if err != nil {
		return nil, err
	}

	ok, err := s.artworks.UpdateActiveFrom(ctx, id, artwork.IsActive, next)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistenceFailed, "updating artwork status failed", err)
	}
	if !ok {
		current, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, activeMachine.Invalid(action, current.IsActive)
	}

	s.publish("status_changed", id)
	return &StatusResult{ID: id, IsActive: next}, nil
}

func (s *Service) publish(action, id string) {
	if s.pub != nil {
		s.pub.Publish("artwork", action, id)
	}
}
