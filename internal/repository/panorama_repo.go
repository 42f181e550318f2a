package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"museumbackend/internal/domain"
)

type PanoramaFilters struct {
	Search string
	Limit  int
	Offset int
}

type PanoramaRepository struct {
	db *gorm.DB
}

func NewPanoramaRepository(db *gorm.DB) *PanoramaRepository {
	return &PanoramaRepository{db: db}
}

func (r *PanoramaRepository) filtered(ctx context.Context, f PanoramaFilters) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Panorama{})
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	return q
}

func (r *PanoramaRepository) GetAll(ctx context.Context, f PanoramaFilters) ([]domain.Panorama, error) {
	var panoramas []domain.Panorama
	err := r.filtered(ctx, f).
		Preload("Hotspots").
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&panoramas).Error
	return panoramas, err
}

func (r *PanoramaRepository) Count(ctx context.Context, f PanoramaFilters) (int64, error) {
	var total int64
	err := r.filtered(ctx, f).Count(&total).Error
	return total, err
}

func (r *PanoramaRepository) GetByID(ctx context.Context, id string) (*domain.Panorama, error) {
	var panorama domain.Panorama
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Hotspots").
		First(&panorama).Error
	if err != nil {
		return nil, err
	}
	return &panorama, nil
}

func (r *PanoramaRepository) Create(ctx context.Context, p *domain.Panorama) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PanoramaRepository) Update(ctx context.Context, p *domain.Panorama) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PanoramaRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Panorama{}).Error
}
