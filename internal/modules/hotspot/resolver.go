package hotspot

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"museumbackend/internal/domain"
	"museumbackend/internal/pkg/apperr"
)

// targetVariant describes one branch of the polymorphic hotspot target.
// Adding a target kind means adding an entry here.
type targetVariant struct {
	lookup  func(r *resolver, ctx context.Context, id string) (string, error)
	missing string
	label   func(title string) string
}

var targetVariants = map[domain.TargetType]targetVariant{
	domain.TargetPanorama: {
		lookup: func(r *resolver, ctx context.Context, id string) (string, error) {
			p, err := r.panoramas.GetByID(ctx, id)
			if err != nil {
				return "", err
			}
			return p.Title, nil
		},
		missing: "target panorama not found",
		label: func(title string) string {
			if title == "" {
				return "🚪 Salle suivante"
			}
			return "🚪 " + title
		},
	},
	domain.TargetArtwork: {
		lookup: func(r *resolver, ctx context.Context, id string) (string, error) {
			a, err := r.artworks.GetByID(ctx, id)
			if err != nil {
				return "", err
			}
			return a.Title, nil
		},
		missing: "target artwork not found",
		label: func(title string) string {
			if title == "" {
				return "🖼️ Œuvre d'art"
			}
			return "🖼️ " + title
		},
	},
}

const genericLabel = "📍 Point d'intérêt"

// resolver validates polymorphic targets and derives default labels.
type resolver struct {
	panoramas PanoramaReader
	artworks  ArtworkReader
}

// validateTarget checks that the (type, id) pair points at an existing
// entity and returns its title for label generation.
func (r *resolver) validateTarget(ctx context.Context, targetType domain.TargetType, targetID string) (string, error) {
	variant, ok := targetVariants[targetType]
	if !ok {
		return "", apperr.Newf(apperr.KindValidation, "invalid target type %q", targetType)
	}

	title, err := variant.lookup(r, ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.New(apperr.KindTargetNotFound, variant.missing)
		}
		return "", apperr.Wrap(apperr.KindInternal, "resolving hotspot target failed", err)
	}
	return title, nil
}

// defaultLabel derives the display label shown when the admin gives
// none. The artwork link takes precedence over the generic target, and
// the label is computed only at creation; later renames do not touch it.
func (r *resolver) defaultLabel(ctx context.Context, targetType domain.TargetType, targetTitle string, artworkID *string) string {
	if artworkID != nil && *artworkID != "" {
		a, err := r.artworks.GetByID(ctx, *artworkID)
		if err == nil {
			return targetVariants[domain.TargetArtwork].label(a.Title)
		}
		return targetVariants[domain.TargetArtwork].label("")
	}

	if variant, ok := targetVariants[targetType]; ok {
		return variant.label(targetTitle)
	}
	return genericLabel
}
