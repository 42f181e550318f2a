package panorama

import (
	"context"

	"museumbackend/internal/domain"
	"museumbackend/internal/repository"
)

type PanoramaRepository interface {
	GetAll(ctx context.Context, f repository.PanoramaFilters) ([]domain.Panorama, error)
	Count(ctx context.Context, f repository.PanoramaFilters) (int64, error)
	GetByID(ctx context.Context, id string) (*domain.Panorama, error)
	Create(ctx context.Context, p *domain.Panorama) error
	Update(ctx context.Context, p *domain.Panorama) error
	Delete(ctx context.Context, id string) error
}

type HotspotRemover interface {
	DeleteByPanorama(ctx context.Context, panoramaID string) error
}
