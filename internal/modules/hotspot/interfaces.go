package hotspot

import (
	"context"

	"museumbackend/internal/domain"
	"museumbackend/internal/repository"
)

type HotspotRepository interface {
	GetAll(ctx context.Context, f repository.HotspotFilters) ([]domain.Hotspot, error)
	Count(ctx context.Context, f repository.HotspotFilters) (int64, error)
	GetByID(ctx context.Context, id string) (*domain.Hotspot, error)
	Create(ctx context.Context, h *domain.Hotspot) error
	Update(ctx context.Context, h *domain.Hotspot) error
	Delete(ctx context.Context, id string) error
	ListByPanorama(ctx context.Context, panoramaID string) ([]domain.Hotspot, error)
	ListArtworkByPanorama(ctx context.Context, panoramaID string) ([]domain.Hotspot, error)
	DeleteByPanorama(ctx context.Context, panoramaID string) error
}

type PanoramaReader interface {
	GetByID(ctx context.Context, id string) (*domain.Panorama, error)
}

type ArtworkReader interface {
	GetByID(ctx context.Context, id string) (*domain.Artwork, error)
}
