package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"museumbackend/internal/domain"
)

type ArtistFilters struct {
	Search          string
	Statut          string
	IncludeInactive bool
	Limit           int
	Offset          int
}

type ArtistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

func (r *ArtistRepository) filtered(ctx context.Context, f ArtistFilters) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Artist{})

	if !f.IncludeInactive {
		q = q.Where("statut = ?", domain.ArtistActive)
	}
	if f.Statut != "" {
		q = q.Where("statut = ?", f.Statut)
	}
	if f.Search != "" {
		// LOWER+LIKE keeps the search portable between postgres and sqlite.
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(nom) LIKE ? OR LOWER(prenom) LIKE ?", pattern, pattern)
	}
	return q
}

func (r *ArtistRepository) GetAll(ctx context.Context, f ArtistFilters) ([]domain.Artist, error) {
	var artists []domain.Artist
	err := r.filtered(ctx, f).
		Order("nom ASC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&artists).Error
	return artists, err
}

func (r *ArtistRepository) Count(ctx context.Context, f ArtistFilters) (int64, error) {
	var total int64
	err := r.filtered(ctx, f).Count(&total).Error
	return total, err
}

func (r *ArtistRepository) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	var artist domain.Artist
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&artist).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *ArtistRepository) Create(ctx context.Context, a *domain.Artist) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ArtistRepository) Update(ctx context.Context, a *domain.Artist) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// UpdateStatutFrom flips the status only when the row still holds the
// expected from state, so two concurrent transitions cannot both succeed
// from a stale read.
func (r *ArtistRepository) UpdateStatutFrom(ctx context.Context, id string, from, to domain.ArtistStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Artist{}).
		Where("id = ? AND statut = ?", id, from).
		Update("statut", to)
	return res.RowsAffected > 0, res.Error
}
