package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"museumbackend/internal/domain"
)

type ArtworkFilters struct {
	// ArtistSearch matches the owning artist's first or last name.
	ArtistSearch    string
	IncludeInactive bool
	Limit           int
	Offset          int
}

type ArtworkRepository struct {
	db *gorm.DB
}

func NewArtworkRepository(db *gorm.DB) *ArtworkRepository {
	return &ArtworkRepository{db: db}
}

func (r *ArtworkRepository) filtered(ctx context.Context, f ArtworkFilters) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Artwork{})

	if !f.IncludeInactive {
		q = q.Where("artworks.is_active = ?", true)
	}
	if f.ArtistSearch != "" {
		pattern := "%" + strings.ToLower(f.ArtistSearch) + "%"
		q = q.Joins("JOIN artists ON artists.id = artworks.artist_id").
			Where("LOWER(artists.nom) LIKE ? OR LOWER(artists.prenom) LIKE ?", pattern, pattern)
	}
	return q
}

func (r *ArtworkRepository) GetAll(ctx context.Context, f ArtworkFilters) ([]domain.Artwork, error) {
	var artworks []domain.Artwork
	err := r.filtered(ctx, f).
		Preload("Artist").
		Preload("Translations").
		Preload("Media").
		Order("artworks.created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&artworks).Error
	return artworks, err
}

func (r *ArtworkRepository) Count(ctx context.Context, f ArtworkFilters) (int64, error) {
	var total int64
	err := r.filtered(ctx, f).Count(&total).Error
	return total, err
}

func (r *ArtworkRepository) GetByID(ctx context.Context, id string) (*domain.Artwork, error) {
	var artwork domain.Artwork
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Artist").
		Preload("Translations").
		Preload("Media").
		First(&artwork).Error
	if err != nil {
		return nil, err
	}
	return &artwork, nil
}

func (r *ArtworkRepository) Create(ctx context.Context, a *domain.Artwork) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ArtworkRepository) Update(ctx context.Context, a *domain.Artwork) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// UpdateActiveFrom is the write-time guard of the soft-delete machine;
// see ArtistRepository.UpdateStatutFrom.
func (r *ArtworkRepository) UpdateActiveFrom(ctx context.Context, id string, from, to bool) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Artwork{}).
		Where("id = ? AND is_active = ?", id, from).
		Update("is_active", to)
	return res.RowsAffected > 0, res.Error
}
