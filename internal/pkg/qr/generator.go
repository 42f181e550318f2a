// Package qr renders the scannable codes printed next to artworks. The
// encoded payload deep-links into the visitor app.
package qr

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"museumbackend/internal/assets"
	"museumbackend/internal/pkg/apperr"
)

const (
	defaultFolder = "museum/qrcodes/artworks"
	imageSize     = 300
)

// Payload is the structured record encoded into an artwork QR image.
type Payload struct {
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
	AppURL    string    `json:"app_url"`
}

// NewArtworkPayload builds the payload for one artwork.
func NewArtworkPayload(artworkID, title, appBaseURL string) Payload {
	return Payload{
		Type:      "artwork",
		ID:        artworkID,
		Title:     title,
		Timestamp: time.Now().UTC(),
		AppURL:    strings.TrimSuffix(appBaseURL, "/") + "/artwork/" + artworkID,
	}
}

// ArtworkKey returns a fresh storage key for an artwork QR image. The
// uniqueness token guarantees a regenerated code never collides with the
// asset it replaces.
func ArtworkKey(artworkID string) string {
	return "artwork_" + strings.ToLower(artworkID) + "_" + uuid.NewString()[:8]
}

// Generator renders artwork QR codes and places them through the upload
// coordinator so they participate in the compensation protocol.
type Generator struct {
	uploads    *assets.Coordinator
	appBaseURL string
	folder     string
}

func NewGenerator(uploads *assets.Coordinator, appBaseURL, folder string) *Generator {
	if folder == "" {
		folder = defaultFolder
	}
	return &Generator{uploads: uploads, appBaseURL: appBaseURL, folder: folder}
}

// GenerateForArtwork encodes the payload, uploads the PNG under a fresh
// key and returns the asset URL.
func (g *Generator) GenerateForArtwork(ctx context.Context, led *assets.Ledger, artworkID, title string) (string, error) {
	payload := NewArtworkPayload(artworkID, title, g.appBaseURL)
	data, err := json.Marshal(payload)
	if err != nil {
		return "", apperr.Wrap(apperr.KindAssetUploadFailed, "encoding qr payload failed", err)
	}

	png, err := qrcode.Encode(string(data), qrcode.Medium, imageSize)
	if err != nil {
		return "", apperr.Wrap(apperr.KindAssetUploadFailed, "generating qr code failed", err)
	}

	return g.uploads.Upload(ctx, led, png, g.folder, ArtworkKey(artworkID))
}
