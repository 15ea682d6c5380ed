package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-booking-api/internal/middleware"
	"github.com/jwalitptl/clinic-booking-api/internal/model"
	authService "github.com/jwalitptl/clinic-booking-api/internal/service/auth"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
	"github.com/jwalitptl/clinic-booking-api/pkg/httputil"
)

type Handler struct {
	service *authService.Service
}

func NewHandler(service *authService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
	}
}

func (h *Handler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.Validation(err.Error()))
		return
	}

	tokens, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, tokens)
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.Validation(err.Error()))
		return
	}

	tokens, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, tokens)
}

func (h *Handler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context(), c.GetString(middleware.ContextSessionID))
	httputil.RespondWithSuccess(c, gin.H{"logged_out": true})
}

func (h *Handler) Me(c *gin.Context) {
	httputil.RespondWithSuccess(c, middleware.CurrentUser(c))
}
