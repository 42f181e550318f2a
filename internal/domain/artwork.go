package domain

import "time"

// Artwork carries a generated QR asset. QRCode is the stable scan value
// (artwork_<id>); QRCodeImageURL points at the current rendered image and
// changes whenever the title is edited.
type Artwork struct {
	ID             string    `gorm:"column:id;primaryKey" json:"id"`
	Title          string    `gorm:"column:title" json:"title"`
	ArtistID       string    `gorm:"column:artist_id;index" json:"artist_id"`
	QRCode         string    `gorm:"column:qr_code" json:"qr_code"`
	QRCodeImageURL *string   `gorm:"column:qr_code_image_url" json:"qr_code_image_url"`
	IsActive       bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`

	Artist       *Artist              `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
	Translations []ArtworkTranslation `gorm:"foreignKey:ArtworkID" json:"translations,omitempty"`
	Media        []ArtworkMedia       `gorm:"foreignKey:ArtworkID" json:"media,omitempty"`
}

func (Artwork) TableName() string { return "artworks" }

type Lang string

const (
	LangFR Lang = "FR"
	LangEN Lang = "EN"
	LangWO Lang = "WO"
)

func (l Lang) Valid() bool {
	switch l {
	case LangFR, LangEN, LangWO:
		return true
	}
	return false
}

type TranslationStatus string

const (
	TranslationDraft     TranslationStatus = "draft"
	TranslationPublished TranslationStatus = "published"
)

// ArtworkTranslation holds the localized texts shown on the exhibit
// screens. One translation per (artwork, lang).
type ArtworkTranslation struct {
	ID          string            `gorm:"column:id;primaryKey" json:"id"`
	ArtworkID   string            `gorm:"column:artwork_id;uniqueIndex:idx_artwork_lang" json:"artwork_id"`
	Lang        Lang              `gorm:"column:lang;uniqueIndex:idx_artwork_lang" json:"lang"`
	Title       string            `gorm:"column:title" json:"title"`
	Description string            `gorm:"column:description" json:"description"`
	Status      TranslationStatus `gorm:"column:status;default:draft" json:"status"`
	CreatedAt   time.Time         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"column:updated_at" json:"updated_at"`
}

func (ArtworkTranslation) TableName() string { return "artwork_translations" }

type MediaType string

const (
	MediaImage MediaType = "IMAGE"
	MediaAudio MediaType = "AUDIO"
	MediaVideo MediaType = "VIDEO"
)

func (t MediaType) Valid() bool {
	switch t {
	case MediaImage, MediaAudio, MediaVideo:
		return true
	}
	return false
}

type ArtworkMedia struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	ArtworkID string    `gorm:"column:artwork_id;index" json:"artwork_id"`
	Type      MediaType `gorm:"column:type" json:"type"`
	URL       string    `gorm:"column:url" json:"url"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ArtworkMedia) TableName() string { return "artwork_media" }
