package directory

import (
	"github.com/gin-gonic/gin"

	directoryService "github.com/jwalitptl/clinic-booking-api/internal/service/directory"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
	"github.com/jwalitptl/clinic-booking-api/pkg/httputil"
)

type Handler struct {
	service *directoryService.Service
}

func NewHandler(service *directoryService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	specialties := r.Group("/specialties")
	{
		specialties.GET("", h.ListSpecialties)
		specialties.GET("/:id/doctors", h.ListDoctorsBySpecialty)
	}

	doctors := r.Group("/doctors")
	{
		doctors.GET("/:id", h.GetDoctor)
		doctors.GET("/:id/slots", h.GetSlots)
	}
}

func (h *Handler) ListSpecialties(c *gin.Context) {
	specialties, err := h.service.ListSpecialties(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, specialties)
}

func (h *Handler) ListDoctorsBySpecialty(c *gin.Context) {
	doctors, err := h.service.ListDoctorsBySpecialty(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, doctors)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	doctor, err := h.service.GetDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, doctor)
}

func (h *Handler) GetSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httputil.RespondWithError(c, errors.Validation("date is required"))
		return
	}

	slots, err := h.service.GetSlots(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, slots)
}
