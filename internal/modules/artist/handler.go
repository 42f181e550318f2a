package artist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"museumbackend/internal/pkg/response"
	"museumbackend/internal/pkg/utils"
	"museumbackend/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/artists", h.List)
	public.GET("/artists/:id", h.GetByID)
	protected.POST("/artists", h.Create)
	protected.PUT("/artists/:id", h.Update)
	protected.PATCH("/artists/:id/status", h.SetStatus)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	result, err := h.service.List(c.Request.Context(), repository.ArtistFilters{
		Search:          q.Search,
		Statut:          q.Statut,
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
	artist, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"artist": artist})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateArtistRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	avatar, err := utils.FormFileBytes(c, "avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid avatar file")
		return
	}

	artist, err := h.service.Create(c.Request.Context(), req, avatar)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"artist": artist})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateArtistRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	avatar, err := utils.FormFileBytes(c, "avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid avatar file")
		return
	}

	artist, err := h.service.Update(c.Request.Context(), c.Param("id"), req, avatar)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"artist": artist})
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
