package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"museumbackend/internal/pkg/response"
	"museumbackend/internal/pkg/utils"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	protected.POST("/admins", h.CreateAdmin)
}

func (h *Handler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	avatar, err := utils.FormFileBytes(c, "avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid avatar file")
		return
	}

	user, err := h.service.CreateAdmin(c.Request.Context(), req, avatar)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user})
}
