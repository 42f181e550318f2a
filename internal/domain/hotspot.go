package domain

import "time"

// TargetType tags the polymorphic destination of a hotspot.
type TargetType string

const (
	TargetPanorama TargetType = "PANORAMA"
	TargetArtwork  TargetType = "ARTWORK"
)

func (t TargetType) Valid() bool {
	return t == TargetPanorama || t == TargetArtwork
}

// HotspotType describes the visual role of the marker in the viewer.
type HotspotType string

const (
	HotspotNavigation HotspotType = "NAVIGATION"
	HotspotArtwork    HotspotType = "ARTWORK"
	HotspotInfo       HotspotType = "INFO"
)

func (t HotspotType) Valid() bool {
	switch t {
	case HotspotNavigation, HotspotArtwork, HotspotInfo:
		return true
	}
	return false
}

// Hotspot anchors an interactive point inside a panorama. X/Y are
// spherical coordinates: x in [-180,180], y in [-90,90]. ArtworkID is the
// direct artwork link carried by artwork-flavored hotspots in addition to
// the generic target.
type Hotspot struct {
	ID          string      `gorm:"column:id;primaryKey" json:"id"`
	PanoramaID  string      `gorm:"column:panorama_id;index" json:"panorama_id"`
	X           float64     `gorm:"column:x" json:"x"`
	Y           float64     `gorm:"column:y" json:"y"`
	TargetType  TargetType  `gorm:"column:target_type" json:"target_type"`
	TargetID    string      `gorm:"column:target_id" json:"target_id"`
	HotspotType HotspotType `gorm:"column:hotspot_type" json:"hotspot_type"`
	Label       string      `gorm:"column:label" json:"label"`
	ArtworkID   *string     `gorm:"column:artwork_id;index" json:"artwork_id"`
	CreatedAt   time.Time   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"column:updated_at" json:"updated_at"`

	Panorama *Panorama `gorm:"foreignKey:PanoramaID" json:"panorama,omitempty"`
	Artwork  *Artwork  `gorm:"foreignKey:ArtworkID" json:"artwork,omitempty"`
}

func (Hotspot) TableName() string { return "hotspots" }
