package panorama

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"museumbackend/internal/assets"
	"museumbackend/internal/domain"
	"museumbackend/internal/modules/events"
	"museumbackend/internal/pkg/apperr"
	"museumbackend/internal/repository"
)

const imageFolder = "museum/panoramas"

type Service struct {
	panoramas PanoramaRepository
	hotspots  HotspotRemover
	uploads   *assets.Coordinator
	pub       events.Publisher
}

type ListResult struct {
	Panoramas []domain.Panorama `json:"panoramas"`
	Total     int64             `json:"total"`
}

func NewService(panoramas PanoramaRepository, hotspots HotspotRemover, uploads *assets.Coordinator, pub events.Publisher) *Service {
	return &Service{panoramas: panoramas, hotspots: hotspots, uploads: uploads, pub: pub}
}

func (s *Service) List(ctx context.Context, f repository.PanoramaFilters) (*ListResult, error) {
	panoramas, err := s.panoramas.GetAll(ctx, f)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "listing panoramas failed", err)
	}
	total, err := s.panoramas.Count(ctx, f)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "counting panoramas failed", err)
	}
	return &ListResult{Panoramas: panoramas, Total: total}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Panorama, error) {
	panorama, err := s.panoramas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "panorama not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "loading panorama failed", err)
	}
	return panorama, nil
}

// Create uploads the optional room image first; a failed insert deletes
// it.
func (s *Service) Create(ctx context.Context, req CreatePanoramaRequest, image []byte) (*domain.Panorama, error) {
	led := assets.NewLedger()

	var imageURL *string
	if len(image) > 0 {
		url, err := s.uploads.Upload(ctx, led, image, imageFolder, assets.Key("panorama", req.Title))
		if err != nil {
			return nil, err
		}
		imageURL = &url
	}

	panorama := &domain.Panorama{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    imageURL,
		RoomType:    req.RoomType,
	}

	if err := s.panoramas.Create(ctx, panorama); err != nil {
		s.uploads.Rollback(ctx, led)
		return nil, apperr.Wrap(apperr.KindPersistenceFailed, "creating panorama failed", err)
	}

	s.publish("created", panorama.ID)
	return panorama, nil
}

// Update applies partial changes. A new image replaces the old one only
// after the record durably references it.
func (s *Service) Update(ctx context.Context, id string, req UpdatePanoramaRequest, image []byte) (*domain.Panorama, error) {
	panorama, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		panorama.Title = req.Title
	}
	if req.Description != "" {
		panorama.Description = req.Description
	}
	if req.RoomType != "" {
		panorama.RoomType = req.RoomType
	}

	led := assets.NewLedger()
	oldImage := panorama.ImageURL

	if len(image) > 0 {
		url, err := s.uploads.Upload(ctx, led, image, imageFolder, assets.Key("panorama", panorama.Title))
		if err != nil {
			return nil, err
		}
		panorama.ImageURL = &url
	}

	if err := s.panoramas.Update(ctx, panorama); err != nil {
		s.uploads.Rollback(ctx, led)
		return nil, apperr.Wrap(apperr.KindPersistenceFailed, "updating panorama failed", err)
	}

	if led.Len() > 0 && oldImage != nil {
		if err := s.uploads.DeleteByURL(ctx, *oldImage); err != nil {
			log.Printf("panorama_image_cleanup_failed id=%s err=%v", panorama.ID, err)
		}
	}

	s.publish("updated", panorama.ID)
	return panorama, nil
}

// Delete removes the room, its hotspots and, best effort, its image.
func (s *Service) Delete(ctx context.Context, id string) error {
	panorama, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.hotspots.DeleteByPanorama(ctx, id); err != nil {
		return apperr.Wrap(apperr.KindPersistenceFailed, "deleting panorama hotspots failed", err)
	}

	if err := s.panoramas.Delete(ctx, id); err != nil {
		return apperr.Wrap(apperr.KindPersistenceFailed, "deleting panorama failed", err)
	}

	if panorama.ImageURL != nil {
		if err := s.uploads.DeleteByURL(ctx, *panorama.ImageURL); err != nil {
			log.Printf("panorama_image_cleanup_failed id=%s err=%v", id, err)
		}
	}

	s.publish("deleted", id)
	return nil
}

func (s *Service) publish(action, id string) {
	if s.pub != nil {
		s.pub.Publish("panorama", action, id)
	}
}
