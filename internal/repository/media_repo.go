package repository

import (
	"context"

	"gorm.io/gorm"

	"museumbackend/internal/domain"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) GetByID(ctx context.Context, id string) (*domain.ArtworkMedia, error) {
	var m domain.ArtworkMedia
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MediaRepository) Create(ctx context.Context, m *domain.ArtworkMedia) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MediaRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.ArtworkMedia{}).Error
}

func (r *MediaRepository) ListByArtwork(ctx context.Context, artworkID string) ([]domain.ArtworkMedia, error) {
	var media []domain.ArtworkMedia
	err := r.db.WithContext(ctx).
		Where("artwork_id = ?", artworkID).
		Order("type DESC").
		Find(&media).Error
	return media, err
}
