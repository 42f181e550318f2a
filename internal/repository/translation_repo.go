package repository

import (
	"context"

	"gorm.io/gorm"

	"museumbackend/internal/domain"
)

type TranslationFilters struct {
	ArtworkID string
	Lang      string
	Status    string
	Limit     int
	Offset    int
}

type TranslationRepository struct {
	db *gorm.DB
}

func NewTranslationRepository(db *gorm.DB) *TranslationRepository {
	return &TranslationRepository{db: db}
}

func (r *TranslationRepository) filtered(ctx context.Context, f TranslationFilters) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.ArtworkTranslation{})
	if f.ArtworkID != "" {
		q = q.Where("artwork_id = ?", f.ArtworkID)
	}
	if f.Lang != "" {
		q = q.Where("lang = ?", f.Lang)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return q
}

func (r *TranslationRepository) GetAll(ctx context.Context, f TranslationFilters) ([]domain.ArtworkTranslation, error) {
	var translations []domain.ArtworkTranslation
	err := r.filtered(ctx, f).
		Order("lang DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&translations).Error
	return translations, err
}

func (r *TranslationRepository) Count(ctx context.Context, f TranslationFilters) (int64, error) {
	var total int64
	err := r.filtered(ctx, f).Count(&total).Error
	return total, err
}

func (r *TranslationRepository) GetByID(ctx context.Context, id string) (*domain.ArtworkTranslation, error) {
	var t domain.ArtworkTranslation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TranslationRepository) ExistsForLang(ctx context.Context, artworkID string, lang domain.Lang) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ArtworkTranslation{}).
		Where("artwork_id = ? AND lang = ?", artworkID, lang).
		Count(&count).Error
	return count > 0, err
}

func (r *TranslationRepository) Create(ctx context.Context, t *domain.ArtworkTranslation) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TranslationRepository) Update(ctx context.Context, t *domain.ArtworkTranslation) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TranslationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.ArtworkTranslation{}).Error
}

func (r *TranslationRepository) ListByArtwork(ctx context.Context, artworkID string) ([]domain.ArtworkTranslation, error) {
	var translations []domain.ArtworkTranslation
	err := r.db.WithContext(ctx).
		Where("artwork_id = ?", artworkID).
		Order("lang DESC").
		Find(&translations).Error
	return translations, err
}
