package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "pupperazi-api/internal/handler/dto/request"
	resdto "pupperazi-api/internal/handler/dto/response"
	"pupperazi-api/internal/handler/httperr"
	"pupperazi-api/internal/usecase/commands"
	"pupperazi-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Create appointment
// @Description Book a grooming appointment from the public booking form
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Create appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown service", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create appointment failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAppointmentView(result.Appointment))
}

// @Summary Get appointment
// @Description Get an appointment with customer, pet and service lines
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetAppointment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrAppointmentNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load appointment", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List appointments
// @Description List recent appointments, newest first
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 100)"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	var limit int32
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil && iv > 0 {
			limit = int32(iv)
		}
	}
	views, err := h.q.ListAppointments(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list appointments", nil)
		return
	}
	items := make([]*resdto.AppointmentResponse, len(views))
	for i, v := range views {
		items[i] = resdto.FromAppointmentView(v)
	}
	c.JSON(http.StatusOK, gin.H{"appointments": items})
}

// @Summary Change appointment status
// @Description Move an appointment along its lifecycle
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.ChangeAppointmentStatusRequest true "Target status"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/status [patch]
func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ChangeAppointmentStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	view, err := h.cmds.ChangeStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		case errors.Is(err, commands.ErrInvalidStatusChange):
			httperr.AbortWithError(c, http.StatusConflict, err, "Invalid status change", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Status change failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Delete appointment
// @Description Remove an appointment record
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrAppointmentNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List services
// @Description List active grooming services offered for booking
// @Tags appointments
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} map[string]string
// @Router /services [get]
func (h *AppointmentHandler) ListServices(c *gin.Context) {
	views, err := h.q.ListServices(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list services", nil)
		return
	}
	items := make([]*resdto.ServiceResponse, len(views))
	for i, v := range views {
		items[i] = resdto.FromServiceView(v)
	}
	c.JSON(http.StatusOK, gin.H{"services": items})
}
