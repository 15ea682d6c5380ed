package symptom

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-booking-api/internal/middleware"
	"github.com/jwalitptl/clinic-booking-api/internal/model"
	workflowService "github.com/jwalitptl/clinic-booking-api/internal/service/workflow"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
	"github.com/jwalitptl/clinic-booking-api/pkg/httputil"
)

// Handler exposes the symptom-checker workflow.
type Handler struct {
	service *workflowService.Service
}

func NewHandler(service *workflowService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	checker := r.Group("/symptom-checker")
	{
		checker.POST("", h.Start)
		checker.GET("/:id", h.Get)
		checker.POST("/:id/symptoms", h.SubmitSymptoms)
		checker.POST("/:id/booking", h.BeginBooking)
		checker.POST("/:id/confirm", h.ConfirmBooking)
	}
}

func (h *Handler) Start(c *gin.Context) {
	session, err := h.service.Start(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, session)
}

func (h *Handler) Get(c *gin.Context) {
	session, err := h.service.Get(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, session)
}

func (h *Handler) SubmitSymptoms(c *gin.Context) {
	var req model.SubmitSymptomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.Validation(err.Error()))
		return
	}

	session, err := h.service.SubmitSymptoms(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), req.Symptoms)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, session)
}

func (h *Handler) BeginBooking(c *gin.Context) {
	var req model.BeginBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httputil.RespondWithError(c, errors.Validation(err.Error()))
		return
	}

	session, err := h.service.BeginBooking(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), req.SpecialtyID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, session)
}

func (h *Handler) ConfirmBooking(c *gin.Context) {
	var req model.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.Validation(err.Error()))
		return
	}

	confirmation, err := h.service.ConfirmBooking(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, confirmation)
}
