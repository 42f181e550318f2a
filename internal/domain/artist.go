package domain

import "time"

// ArtistStatus is the soft-delete state of an artist. The French values
// are part of the public API contract.
type ArtistStatus string

const (
	ArtistActive   ArtistStatus = "actif"
	ArtistInactive ArtistStatus = "inactif"
)

type Artist struct {
	ID        string       `gorm:"column:id;primaryKey" json:"id"`
	Nom       string       `gorm:"column:nom" json:"nom"`
	Prenom    string       `gorm:"column:prenom" json:"prenom"`
	Bio       string       `gorm:"column:bio" json:"bio"`
	Avatar    *string      `gorm:"column:avatar" json:"avatar"`
	Statut    ArtistStatus `gorm:"column:statut;default:actif" json:"statut"`
	CreatedAt time.Time    `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time    `gorm:"column:updated_at" json:"updated_at"`

	Artworks []Artwork `gorm:"foreignKey:ArtistID" json:"artworks,omitempty"`
}

func (Artist) TableName() string { return "artists" }
