package artwork

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"museumbackend/internal/domain"
	"museumbackend/internal/modules/events"
	"museumbackend/internal/pkg/apperr"
	"museumbackend/internal/repository"
)

// TranslationService manages the localized texts of an artwork. One
// translation per (artwork, lang), enforced both by a pre-check and the
// unique index behind it.
type TranslationService struct {
	translations TranslationRepository
	artworks     ArtworkRepository
	pub          events.Publisher
}

type TranslationListResult struct {
	Translations []domain.ArtworkTranslation `json:"translations"`
	Total        int64                       `json:"total"`
}

func NewTranslationService(translations TranslationRepository, artworks ArtworkRepository, pub events.Publisher) *TranslationService {
	return &TranslationService{translations: translations, artworks: artworks, pub: pub}
}

func (s *TranslationService) List(ctx context.Context, f repository.TranslationFilters) (*TranslationListResult, error) {
	translations, err := s.translations.GetAll(ctx, f)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "listing translations failed", err)
	}
	total, err := s.translations.Count(ctx, f)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "counting translations failed", err)
	}
	return &TranslationListResult{Translations: translations, Total: total}, nil
}

func (s *TranslationService) Create(ctx context.Context, artworkID string, req CreateTranslationRequest) (*domain.ArtworkTranslation, error) {
	if _, err := s.artworks.GetByID(ctx, artworkID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "artwork not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "loading artwork failed", err)
	}

	if !req.Lang.Valid() {
		return nil, apperr.Newf(apperr.KindValidation, "invalid language %q", req.Lang)
	}

	exists, err := s.translations.ExistsForLang(ctx, artworkID, req.Lang)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "checking translation failed", err)
	}
	if exists {
		return nil, apperr.Newf(apperr.KindConflict, "a translation already exists for language %s", req.Lang)
	}

	t := &domain.ArtworkTranslation{
		ID:          uuid.NewString(),
		ArtworkID:   artworkID,
		Lang:        req.Lang,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TranslationDraft,
	}

	if err := s.translations.Create(ctx, t); err != nil {
		// The pre-check races with concurrent creates; the index is the
		// real arbiter.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperr.Newf(apperr.KindConflict, "a translation already exists for language %s", req.Lang)
		}
		return nil, apperr.Wrap(apperr.KindPersistenceFailed, "creating translation failed", err)
	}

	s.publish("translation_created", artworkID)
	return t, nil
}

func (s *TranslationService) GetByID(ctx context.Context, id string) (*domain.ArtworkTranslation, error) {
	t, err := s.translations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "translation not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "loading translation failed", err)
	}
	return t, nil
}

func (s *TranslationService) Update(ctx context.Context, id string, req UpdateTranslationRequest) (*domain.ArtworkTranslation, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		t.Title = req.Title
	}
	if req.Description != "" {
		t.Description = req.Description
	}
	if req.Status != "" {
		if req.Status != domain.TranslationDraft && req.Status != domain.TranslationPublished {
			return nil, apperr.Newf(apperr.KindValidation, "invalid status %q", req.Status)
		}
		t.Status = req.Status
	}

	if err := s.translations.Update(ctx, t); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistenceFailed, "updating translation failed", err)
	}

	s.publish("translation_updated", t.ArtworkID)
	return t, nil
}

func (s *TranslationService) Delete(ctx context.Context, id string) error {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.translations.Delete(ctx, id); err != nil {
		return apperr.Wrap(apperr.KindPersistenceFailed, "deleting translation failed", err)
	}

	s.publish("translation_deleted", t.ArtworkID)
	return nil
}

func (s *TranslationService) ListByArtwork(ctx context.Context, artworkID string) ([]domain.ArtworkTranslation, error) {
	if _, err := s.artworks.GetByID(ctx, artworkID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "artwork not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "loading artwork failed", err)
	}

	translations, err := s.translations.ListByArtwork(ctx, artworkID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "listing translations failed", err)
	}
	return translations, nil
}

func (s *TranslationService) publish(action, artworkID string) {
	if s.pub != nil {
		s.pub.Publish("artwork", action, artworkID)
	}
}
