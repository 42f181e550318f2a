package domain

import "time"

type RoomType string

const (
	RoomModernArt RoomType = "MODERN_ART"
	RoomHistory   RoomType = "HISTORY"
)

// Panorama is one navigable 360° room of the exhibit.
type Panorama struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	ImageURL    *string   `gorm:"column:image_url" json:"image_url"`
	RoomType    RoomType  `gorm:"column:room_type" json:"room_type"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`

	Hotspots []Hotspot `gorm:"foreignKey:PanoramaID" json:"hotspots,omitempty"`
}

func (Panorama) TableName() string { return "panoramas" }
