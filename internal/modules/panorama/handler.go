package panorama

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
	public.GET("/panoramas", h.List)
	public.GET("/panoramas/:id", h.GetByID)
	protected.POST("/panoramas", h.Create)
	protected.PUT("/panoramas/:id", h.Update)
	protected.DELETE("/panoramas/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	result, err := h.service.List(c.Request.Context(), repository.PanoramaFilters{
		Search: q.Search,
		Limit:  q.Limit,
		Offset: q.Offset,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) GetByID(c *gin.Context) {
	panorama, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"panorama": panorama})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePanoramaRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	image, err := utils.FormFileBytes(c, "image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid image file")
		return
	}

	panorama, err := h.service.Create(c.Request.Context(), req, image)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"panorama": panorama})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePanoramaRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	image, err := utils.FormFileBytes(c, "image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid image file")
		return
	}

	panorama, err := h.service.Update(c.Request.Context(), c.Param("id"), req, image)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"panorama": panorama})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
