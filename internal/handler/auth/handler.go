package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/altikastudio/dashboard-api/internal/service/auth"
	apperrors "github.com/altikastudio/dashboard-api/pkg/errors"
	"github.com/altikastudio/dashboard-api/pkg/httputil"
)

type Handler struct {
	service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(g *gin.RouterGroup) {
	group := g.Group("/auth")
	group.POST("/login", h.Login)
	group.POST("/logout", h.Logout)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login opens a dashboard session backed by an upstream credential.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid login request", err))
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"token": token})
}

// Logout closes the session named by the bearer token, if any.
func (h *Handler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if parts := strings.Split(header, " "); len(parts) == 2 && parts[0] == "Bearer" {
		h.service.Logout(parts[1])
	}
	httputil.RespondWithSuccess(c, gin.H{"logged_out": true})
}
