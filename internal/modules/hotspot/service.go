package hotspot

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"museumbackend/internal/domain"
	"museumbackend/internal/modules/events"
	"museumbackend/internal/pkg/apperr"
	"museumbackend/internal/repository"
)

type Service struct {
	hotspots HotspotRepository
	resolve  resolver
	pub      events.Publisher
}

type ListResult struct {
	Hotspots []domain.Hotspot `json:"hotspots"`
	Total    int64            `json:"total"`
}

func NewService(hotspots HotspotRepository, panoramas PanoramaReader, artworks ArtworkReader, pub events.Publisher) *Service {
	return &Service{
		hotspots: hotspots,
		resolve:  resolver{panoramas: panoramas, artworks: artworks},
		pub:      pub,
	}
}

func (s *Service) List(ctx context.Context, f repository.HotspotFilters) (*ListResult, error) {
	hotspots, err := s.hotspots.GetAll(ctx, f)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "listing hotspots failed", err)
	}
	total, err := s.hotspots.Count(ctx, f)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "counting hotspots failed", err)
	}
	return &ListResult{Hotspots: hotspots, Total: total}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Hotspot, error) {
	hotspot, err := s.hotspots.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "hotspot not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "loading hotspot failed", err)
	}
	return hotspot, nil
}

// Create validates the containing panorama, the polymorphic target and
// the optional artwork link before inserting. The default label is
// derived only here; later target renames leave it alone.
func (s *Service) Create(ctx context.Context, req CreateHotspotRequest) (*domain.Hotspot, error) {
	if _, err := s.resolve.panoramas.GetByID(ctx, req.PanoramaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "panorama not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "loading panorama failed", err)
	}

	if !req.HotspotType.Valid() {
		return nil, apperr.Newf(apperr.KindValidation, "invalid hotspot type %q", req.HotspotType)
	}

	targetTitle, err := s.resolve.validateTarget(ctx, req.TargetType, req.TargetID)
	if err != nil {
		return nil, err
	}

	if req.ArtworkID != nil && *req.ArtworkID != "" {
		if _, err := s.resolve.artworks.GetByID(ctx, *req.ArtworkID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.New(apperr.KindNotFound, "linked artwork not found")
			}
			return nil, apperr.Wrap(apperr.KindInternal, "loading artwork failed", err)
		}
	}

	label := req.Label
	if label == "" {
		label = s.resolve.defaultLabel(ctx, req.TargetType, targetTitle, req.ArtworkID)
	}

	hotspot := &domain.Hotspot{
		ID:          uuid.NewString(),
		PanoramaID:  req.PanoramaID,
		X:           req.X,
		Y:           req.Y,
		TargetType:  req.TargetType,
		TargetID:    req.TargetID,
		HotspotType: req.HotspotType,
		Label:       label,
		ArtworkID:   req.ArtworkID,
	}

	if err := s.hotspots.Create(ctx, hotspot); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistenceFailed, "creating hotspot failed", err)
	}

	s.publish("created", hotspot.ID)
	return hotspot, nil
}

// CreateArtworkHotspot is the shorthand for placing an artwork marker:
// the artwork is both the target and the direct link, and the label
// defaults to the bare artwork title.
func (s *Service) CreateArtworkHotspot(ctx context.Context, req CreateArtworkHotspotRequest) (*domain.Hotspot, error) {
	if req.Label == "" {
		artwork, err := s.resolve.artworks.GetByID(ctx, req.ArtworkID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.New(apperr.KindTargetNotFound, "target artwork not found")
			}
			return nil, apperr.Wrap(apperr.KindInternal, "loading artwork failed", err)
		}
		req.Label = artwork.Title
	}

	return s.Create(ctx, CreateHotspotRequest{
		PanoramaID:  req.PanoramaID,
		X:           req.X,
		Y:           req.Y,
		TargetType:  domain.TargetArtwork,
		TargetID:    req.ArtworkID,
		HotspotType: domain.HotspotArtwork,
		Label:       req.Label,
		ArtworkID:   &req.ArtworkID,
	})
}

// Update applies partial changes. When either half of the target pair
// changes, the resulting pair is re-validated as a whole.
func (s *Service) Update(ctx context.Context, id string, req UpdateHotspotRequest) (*domain.Hotspot, error) {
	hotspot, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PanoramaID != nil && *req.PanoramaID != hotspot.PanoramaID {
		if _, err := s.resolve.panoramas.GetByID(ctx, *req.PanoramaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.New(apperr.KindNotFound, "panorama not found")
			}
			return nil, apperr.Wrap(apperr.KindInternal, "loading panorama failed", err)
		}
		hotspot.PanoramaID = *req.PanoramaID
	}

	if req.ArtworkID != nil {
		if *req.ArtworkID == "" {
			hotspot.ArtworkID = nil
		} else {
			if _, err := s.resolve.artworks.GetByID(ctx, *req.ArtworkID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, apperr.New(apperr.KindNotFound, "linked artwork not found")
				}
				return nil, apperr.Wrap(apperr.KindInternal, "loading artwork failed", err)
			}
			hotspot.ArtworkID = req.ArtworkID
		}
	}

	if req.X != nil {
		hotspot.X = *req.X
	}
	if req.Y != nil {
		hotspot.Y = *req.Y
	}
	if req.HotspotType != nil {
		if !req.HotspotType.Valid() {
			return nil, apperr.Newf(apperr.KindValidation, "invalid hotspot type %q", *req.HotspotType)
		}
		hotspot.HotspotType = *req.HotspotType
	}
	if req.Label != nil {
		hotspot.Label = *req.Label
	}

	if req.TargetType != nil || req.TargetID != nil {
		if req.TargetType != nil {
			hotspot.TargetType = *req.TargetType
		}
		if req.TargetID != nil {
			hotspot.TargetID = *req.TargetID
		}
		if _, err := s.resolve.validateTarget(ctx, hotspot.TargetType, hotspot.TargetID); err != nil {
			return nil, err
		}
	}

	// Preloaded relations would be written back by Save.
	hotspot.Panorama = nil
	hotspot.Artwork = nil

	if err := s.hotspots.Update(ctx, hotspot); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistenceFailed, "updating hotspot failed", err)
	}

	s.publish("updated", hotspot.ID)
	return hotspot, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.hotspots.Delete(ctx, id); err != nil {
		return apperr.Wrap(apperr.KindPersistenceFailed, "deleting hotspot failed", err)
	}

	s.publish("deleted", id)
	return nil
}

func (s *Service) ListByPanorama(ctx context.Context, panoramaID string) ([]domain.Hotspot, error) {
	if _, err := s.resolve.panoramas.GetByID(ctx, panoramaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "panorama not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "loading panorama failed", err)
	}

	hotspots, err := s.hotspots.ListByPanorama(ctx, panoramaID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "listing hotspots failed", err)
	}
	return hotspots, nil
}

func (s *Service) ListArtworkByPanorama(ctx context.Context, panoramaID string) ([]domain.Hotspot, error) {
	if _, err := s.resolve.panoramas.GetByID(ctx, panoramaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "panorama not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "loading panorama failed", err)
	}

	hotspots, err := s.hotspots.ListArtworkByPanorama(ctx, panoramaID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "listing hotspots failed", err)
	}
	return hotspots, nil
}

func (s *Service) publish(action, id string) {
	if s.pub != nil {
		s.pub.Publish("hotspot", action, id)
	}
}
