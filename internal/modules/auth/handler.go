package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"museumbackend/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/auth/login", h.Login)
	protected.GET("/auth/me", h.Me)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.GetCurrentUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}
