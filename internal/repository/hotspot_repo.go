package repository

import (
	"context"

	"gorm.io/gorm"

	"museumbackend/internal/domain"
)

type HotspotFilters struct {
	PanoramaID string
	TargetType string
	Limit      int
	Offset     int
}

type HotspotRepository struct {
	db *gorm.DB
}

func NewHotspotRepository(db *gorm.DB) *HotspotRepository {
	return &HotspotRepository{db: db}
}

func (r *HotspotRepository) filtered(ctx context.Context, f HotspotFilters) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Hotspot{})
	if f.PanoramaID != "" {
		q = q.Where("panorama_id = ?", f.PanoramaID)
	}
	if f.TargetType != "" {
		q = q.Where("target_type = ?", f.TargetType)
	}
	return q
}

func (r *HotspotRepository) GetAll(ctx context.Context, f HotspotFilters) ([]domain.Hotspot, error) {
	var hotspots []domain.Hotspot
	err := r.filtered(ctx, f).
		Preload("Panorama").
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&hotspots).Error
	return hotspots, err
}

func (r *HotspotRepository) Count(ctx context.Context, f HotspotFilters) (int64, error) {
	var total int64
	err := r.filtered(ctx, f).Count(&total).Error
	return total, err
}

func (r *HotspotRepository) GetByID(ctx context.Context, id string) (*domain.Hotspot, error) {
	var hotspot domain.Hotspot
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Panorama").
		Preload("Artwork").
		Preload("Artwork.Artist").
		Preload("Artwork.Media").
		Preload("Artwork.Translations").
		First(&hotspot).Error
	if err != nil {
		return nil, err
	}
	return &hotspot, nil
}

func (r *HotspotRepository) Create(ctx context.Context, h *domain.Hotspot) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HotspotRepository) Update(ctx context.Context, h *domain.Hotspot) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *HotspotRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Hotspot{}).Error
}

func (r *HotspotRepository) ListByPanorama(ctx context.Context, panoramaID string) ([]domain.Hotspot, error) {
	var hotspots []domain.Hotspot
	err := r.db.WithContext(ctx).
		Where("panorama_id = ?", panoramaID).
		Order("created_at ASC").
		Find(&hotspots).Error
	return hotspots, err
}

// ListArtworkByPanorama returns the artwork-targeting hotspots of a room
// with their artwork details preloaded for the exhibit viewer.
func (r *HotspotRepository) ListArtworkByPanorama(ctx context.Context, panoramaID string) ([]domain.Hotspot, error) {
	var hotspots []domain.Hotspot
	err := r.db.WithContext(ctx).
		Where("panorama_id = ? AND target_type = ?", panoramaID, domain.TargetArtwork).
		Preload("Artwork").
		Preload("Artwork.Artist").
		Preload("Artwork.Media").
		Preload("Artwork.Translations").
		Order("created_at ASC").
		Find(&hotspots).Error
	return hotspots, err
}

func (r *HotspotRepository) DeleteByPanorama(ctx context.Context, panoramaID string) error {
	return r.db.WithContext(ctx).
		Where("panorama_id = ?", panoramaID).
		Delete(&domain.Hotspot{}).Error
}
