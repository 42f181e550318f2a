package artist

import (
	"context"

	"museumbackend/internal/domain"
	"museumbackend/internal/repository"
)

type ArtistRepository interface {
	GetAll(ctx context.Context, f repository.ArtistFilters) ([]domain.Artist, error)
	Count(ctx context.Context, f repository.ArtistFilters) (int64, error)
	GetByID(ctx context.Context, id string) (*domain.Artist, error)
	Create(ctx context.Context, a *domain.Artist) error
	Update(ctx context.Context, a *domain.Artist) error
	UpdateStatutFrom(ctx context.Context, id string, from, to domain.ArtistStatus) (bool, error)
}
