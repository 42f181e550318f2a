package artwork

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"museumbackend/internal/pkg/response"
	"museumbackend/internal/pkg/utils"
	"museumbackend/internal/repository"
)

type Handler struct {
	service      *Service
	translations *TranslationService
	media        *MediaService
}

func NewHandler(service *Service, translations *TranslationService, media *MediaService) *Handler {
	return &Handler{service: service, translations: translations, media: media}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/artworks", h.List)
	public.GET("/artworks/:id", h.GetByID)
	public.GET("/artworks/:id/translations", h.ListTranslations)
	public.GET("/translations", h.ListAllTranslations)
	public.GET("/artworks/:id/media", h.ListMedia)

	protected.POST("/artworks", h.Create)
	protected.PUT("/artworks/:id", h.Update)
	protected.PATCH("/artworks/:id/status", h.SetStatus)
	protected.POST("/artworks/:id/translations", h.CreateTranslation)
	protected.PUT("/translations/:id", h.UpdateTranslation)
	protected.DELETE("/translations/:id", h.DeleteTranslation)
	protected.POST("/artworks/:id/media", h.AddMedia)
	protected.DELETE("/media/:id", h.DeleteMedia)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	result, err := h.service.List(c.Request.Context(), repository.ArtworkFilters{
		ArtistSearch:    q.ArtistSearch,
		IncludeInactive: q.IncludeInactive,
		Limit:           q.Limit,
		Offset:          q.Offset,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) GetByID(c *gin.Context) {
	artwork, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"artwork": artwork})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	artwork, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"artwork": artwork})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	artwork, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"artwork": artwork})
}

func (h *Handler) SetStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), req.Action)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) CreateTranslation(c *gin.Context) {
	var req CreateTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.translations.Create(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"translation": t})
}

func (h *Handler) UpdateTranslation(c *gin.Context) {
	var req UpdateTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.translations.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"translation": t})
}

func (h *Handler) DeleteTranslation(c *gin.Context) {
	if err := h.translations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListAllTranslations(c *gin.Context) {
	var q TranslationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	result, err := h.translations.List(c.Request.Context(), repository.TranslationFilters{
		ArtworkID: q.ArtworkID,
		Lang:      q.Lang,
		Status:    q.Status,
		Limit:     q.Limit,
		Offset:    q.Offset,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) ListTranslations(c *gin.Context) {
	translations, err := h.translations.ListByArtwork(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"translations": translations})
}

func (h *Handler) AddMedia(c *gin.Context) {
	var req AddMediaRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	content, err := utils.FormFileBytes(c, "file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid media file")
		return
	}

	m, err := h.media.Add(c.Request.Context(), c.Param("id"), req.Type, content)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"media": m})
}

func (h *Handler) DeleteMedia(c *gin.Context) {
	if err := h.media.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListMedia(c *gin.Context) {
	media, err := h.media.ListByArtwork(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"media": media})
}
