package artist

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

const avatarFolder = "museum/artists/avatars"

// statutMachine is the artist soft-delete lifecycle. "delete" deactivates
// and "restore" reactivates; no other transitions exist.
var statutMachine = status.NewMachine(map[string]status.Edge[domain.ArtistStatus]{
	"delete":  {From: domain.ArtistActive, To: domain.ArtistInactive},
	"restore": {From: domain.ArtistInactive, To: domain.ArtistActive},
}, func(s domain.ArtistStatus) string { return string(s) })

type Service struct {
	artists ArtistRepository
	uploads *assets.Coordinator
	pub     events.Publisher
}

type ListResult struct {
	Artists []domain.Artist `json:"artists"`
	Total   int64           `json:"total"`
}

type StatusResult struct {
	ID     string              `json:"id"`
	Statut domain.ArtistStatus `json:"statut"`
}

func NewService(artists ArtistRepository, uploads *assets.Coordinator, pub events.Publisher) *Service {
	return &Service{artists: artists, uploads: uploads, pub: pub}
}

func (s *Service) List(ctx context.Context, f repository.ArtistFilters) (*ListResult, error) {
	artists, err := s.artists.GetAll(ctx, f)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "listing artists failed", err)
	}
	total, err := s.artists.Count(ctx, f)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "counting artists failed", err)
	}
	return &ListResult{Artists: artists, Total: total}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	artist, err := s.artists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "artist not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "loading artist failed", err)
	}
	return artist, nil
}

// Create uploads the optional avatar first, then persists the record. A
// failed insert deletes the avatar so no orphan asset survives.
func (s *Service) Create(ctx context.Context, req CreateArtistRequest, avatar []byte) (*domain.Artist, error) {
	led := assets.NewLedger()

	var avatarURL *string
	if len(avatar) > 0 {
		url, err := s.uploads.Upload(ctx, led, avatar, avatarFolder, assets.Key("artist", req.Prenom, req.Nom))
		if err != nil {
			return nil, err
		}
		avatarURL = &url
	}

	artist := &domain.Artist{
		ID:     uuid.NewString(),
		Nom:    req.Nom,
		Prenom: req.Prenom,
		Bio:    req.Bio,
		Avatar: avatarURL,
		Statut: domain.ArtistActive,
	}

	if err := s.artists.Create(ctx, artist); err != nil {
		s.uploads.Rollback(ctx, led)
		return nil, apperr.Wrap(apperr.KindPersistenceFailed, "creating artist failed", err)
	}

	s.publish("created", artist.ID)
	return artist, nil
}

// Update applies partial field changes. A new avatar is uploaded under a
// fresh key before the write; the replaced asset is removed only after
// the record durably references the new one.
func (s *Service) Update(ctx context.Context, id string, req UpdateArtistRequest, avatar []byte) (*domain.Artist, error) {
	artist, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nom != "" {
		artist.Nom = req.Nom
	}
	if req.Prenom != "" {
		artist.Prenom = req.Prenom
	}
	if req.Bio != "" {
		artist.Bio = req.Bio
	}

	led := assets.NewLedger()
	oldAvatar := artist.Avatar

	if len(avatar) > 0 {
		url, err := s.uploads.Upload(ctx, led, avatar, avatarFolder, assets.Key("artist", artist.Prenom, artist.Nom))
		if err != nil {
			return nil, err
		}
		artist.Avatar = &url
	}

	if err := s.artists.Update(ctx, artist); err != nil {
		s.uploads.Rollback(ctx, led)
		return nil, apperr.Wrap(apperr.KindPersistenceFailed, "updating artist failed", err)
	}

	if led.Len() > 0 && oldAvatar != nil {
		if err := s.uploads.DeleteByURL(ctx, *oldAvatar); err != nil {
			log.Printf("artist_avatar_cleanup_failed id=%s err=%v", artist.ID, err)
		}
	}

	s.publish("updated", artist.ID)
	return artist, nil
}

// SetStatus runs one lifecycle action. The transition is checked against
// the loaded state, then re-validated by a guarded update so concurrent
// actions cannot both win.
func (s *Service) SetStatus(ctx context.Context, id, action string) (*StatusResult, error) {
	artist, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := statutMachine.Resolve(action, artist.Statut)
	if err != nil {
		return nil, err
	}

	ok, err := s.artists.UpdateStatutFrom(ctx, id, artist.Statut, next)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistenceFailed, "updating artist status failed", err)
	}
	if !ok {
		current, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, statutMachine.Invalid(action, current.Statut)
	}

	s.publish("status_changed", id)
	return &StatusResult{ID: id, Statut: next}, nil
}

func (s *Service) publish(action, id string) {
	if s.pub != nil {
		s.pub.Publish("artist", action, id)
	}
}
