package hotspot

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"museumbackend/internal/pkg/response"
	"museumbackend/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/hotspots", h.List)
	public.GET("/hotspots/:id", h.GetByID)
	public.GET("/panoramas/:id/hotspots", h.ListByPanorama)
	public.GET("/panoramas/:id/hotspots/artworks", h.ListArtworkByPanorama)

	protected.POST("/hotspots", h.Create)
	protected.POST("/hotspots/artwork", h.CreateArtworkHotspot)
	protected.PUT("/hotspots/:id", h.Update)
	protected.DELETE("/hotspots/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	result, err := h.service.List(c.Request.Context(), repository.HotspotFilters{
		PanoramaID: q.PanoramaID,
		TargetType: q.TargetType,
		Limit:      q.Limit,
		Offset:     q.Offset,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) GetByID(c *gin.Context) {
	hotspot, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotspot": hotspot})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateHotspotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	hotspot, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"hotspot": hotspot})
}

func (h *Handler) CreateArtworkHotspot(c *gin.Context) {
	var req CreateArtworkHotspotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	hotspot, err := h.service.CreateArtworkHotspot(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"hotspot": hotspot})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateHotspotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	hotspot, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotspot": hotspot})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListByPanorama(c *gin.Context) {
	hotspots, err := h.service.ListByPanorama(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotspots": hotspots})
}

func (h *Handler) ListArtworkByPanorama(c *gin.Context) {
	hotspots, err := h.service.ListArtworkByPanorama(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotspots": hotspots})
}
