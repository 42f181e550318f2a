package artwork

import "museumbackend/internal/domain"

type CreateArtworkRequest struct {
	Title    string `json:"title" binding:"required"`
	ArtistID string `json:"artist_id" binding:"required"`
}

type UpdateArtworkRequest struct {
	Title    string `json:"title"`
	ArtistID string `json:"artist_id"`
}

type StatusRequest struct {
	Action string `json:"action" binding:"required"`
}

type ListQuery struct {
	ArtistSearch    string `form:"artist_search"`
	IncludeInactive bool   `form:"include_inactive"`
	Limit           int    `form:"limit,default=50"`
	Offset          int    `form:"offset"`
}

type TranslationListQuery struct {
	ArtworkID string `form:"artwork_id"`
	Lang      string `form:"lang"`
	Status    string `form:"status"`
	Limit     int    `form:"limit,default=50"`
	Offset    int    `form:"offset"`
}

type CreateTranslationRequest struct {
	Lang        domain.Lang `json:"lang" binding:"required"`
	Title       string      `json:"title" binding:"required"`
	Description string      `json:"description"`
}

type UpdateTranslationRequest struct {
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Status      domain.TranslationStatus `json:"status"`
}

type AddMediaRequest struct {
	Type domain.MediaType `form:"type" binding:"required"`
}
