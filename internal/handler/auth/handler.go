package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inaaqc/clinical-api/internal/handler"
	"github.com/inaaqc/clinical-api/internal/middleware"
	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/service/auth"
)

type Handler struct {
	service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/auth/me", h.Me)
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

// Me returns the profile the auth middleware resolved for this request.
func (h *Handler) Me(c *gin.Context) {
	current, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("could not validate credentials"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(current))
}
