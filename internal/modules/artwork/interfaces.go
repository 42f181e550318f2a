package artwork

import (
	"context"

	"museumbackend/internal/assets"
	"museumbackend/internal/domain"
	"museumbackend/internal/repository"
)

type ArtworkRepository interface {
	GetAll(ctx context.Context, f repository.ArtworkFilters) ([]domain.Artwork, error)
	Count(ctx context.Context, f repository.ArtworkFilters) (int64, error)
	GetByID(ctx context.Context, id string) (*domain.Artwork, error)
	Create(ctx context.Context, a *domain.Artwork) error
	Update(ctx context.Context, a *domain.Artwork) error
	UpdateActiveFrom(ctx context.Context, id string, from, to bool) (bool, error)
}

type ArtistReader interface {
	GetByID(ctx context.Context, id string) (*domain.Artist, error)
}

type TranslationRepository interface {
	GetAll(ctx context.Context, f repository.TranslationFilters) ([]domain.ArtworkTranslation, error)
	Count(ctx context.Context, f repository.TranslationFilters) (int64, error)
	GetByID(ctx context.Context, id string) (*domain.ArtworkTranslation, error)
	ExistsForLang(ctx context.Context, artworkID string, lang domain.Lang) (bool, error)
	Create(ctx context.Context, t *domain.ArtworkTranslation) error
	Update(ctx context.Context, t *domain.ArtworkTranslation) error
	Delete(ctx context.Context, id string) error
	ListByArtwork(ctx context.Context, artworkID string) ([]domain.ArtworkTranslation, error)
}

type MediaRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ArtworkMedia, error)
	Create(ctx context.Context, m *domain.ArtworkMedia) error
	Delete(ctx context.Context, id string) error
	ListByArtwork(ctx context.Context, artworkID string) ([]domain.ArtworkMedia, error)
}

type qrGenerator interface {
	GenerateForArtwork(ctx context.Context, led *assets.Ledger, artworkID, title string) (string, error)
}
