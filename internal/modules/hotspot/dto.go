package hotspot

import "museumbackend/internal/domain"

type CreateHotspotRequest struct {
	PanoramaID  string             `json:"panorama_id" binding:"required"`
	X           float64            `json:"x" binding:"min=-180,max=180"`
	Y           float64            `json:"y" binding:"min=-90,max=90"`
	TargetType  domain.TargetType  `json:"target_type" binding:"required"`
	TargetID    string             `json:"target_id" binding:"required"`
	HotspotType domain.HotspotType `json:"hotspot_type" binding:"required"`
	Label       string             `json:"label"`
	ArtworkID   *string            `json:"artwork_id"`
}

// UpdateHotspotRequest uses pointers so absent fields are left
// untouched. An empty artwork_id clears the link.
type UpdateHotspotRequest struct {
	PanoramaID  *string             `json:"panorama_id"`
	X           *float64            `json:"x" binding:"omitempty,min=-180,max=180"`
	Y           *float64            `json:"y" binding:"omitempty,min=-90,max=90"`
	TargetType  *domain.TargetType  `json:"target_type"`
	TargetID    *string             `json:"target_id"`
	HotspotType *domain.HotspotType `json:"hotspot_type"`
	Label       *string             `json:"label"`
	ArtworkID   *string             `json:"artwork_id"`
}

type CreateArtworkHotspotRequest struct {
	PanoramaID string  `json:"panorama_id" binding:"required"`
	ArtworkID  string  `json:"artwork_id" binding:"required"`
	X          float64 `json:"x" binding:"min=-180,max=180"`
	Y          float64 `json:"y" binding:"min=-90,max=90"`
	Label      string  `json:"label"`
}

type ListQuery struct {
	PanoramaID string `form:"panorama_id"`
	TargetType string `form:"target_type"`
	Limit      int    `form:"limit,default=50"`
	Offset     int    `form:"offset"`
}
