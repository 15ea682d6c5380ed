package appointment

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-booking-api/internal/middleware"
	"github.com/jwalitptl/clinic-booking-api/internal/model"
	appointmentService "github.com/jwalitptl/clinic-booking-api/internal/service/appointment"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
	"github.com/jwalitptl/clinic-booking-api/pkg/httputil"
)

type Handler struct {
	service *appointmentService.Service
}

func NewHandler(service *appointmentService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.POST("", h.CreateAppointment)
		appointments.GET("/:id", h.GetAppointment)
		appointments.POST("/:id/cancel", h.CancelAppointment)
		appointments.POST("/:id/complete", h.CompleteAppointment)
	}
}

// ListAppointments returns the caller's role-scoped view of the ledger.
func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.service.ListForUser(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, appointments)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.Validation(err.Error()))
		return
	}

	apt, err := h.service.Create(c.Request.Context(), middleware.CurrentUser(c), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, apt)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	apt, err := h.service.Get(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, apt)
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	apt, err := h.service.Cancel(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, apt)
}

func (h *Handler) CompleteAppointment(c *gin.Context) {
	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httputil.RespondWithError(c, errors.Validation(err.Error()))
		return
	}

	apt, err := h.service.Complete(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), req.Notes)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, apt)
}
