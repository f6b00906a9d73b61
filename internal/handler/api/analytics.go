package api

import (
	"errors"
	"net/http"

	reqdto "pupperazi-api/internal/handler/dto/request"
	resdto "pupperazi-api/internal/handler/dto/response"
	"pupperazi-api/internal/handler/httperr"
	"pupperazi-api/internal/usecase/commands"
	"pupperazi-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	cmds commands.EventCommands
	q    queries.AnalyticsQueries
}

func NewAnalyticsHandler(cmds commands.EventCommands, q queries.AnalyticsQueries) *AnalyticsHandler {
	return &AnalyticsHandler{cmds: cmds, q: q}
}

// @Summary Record tracking event
// @Description Record a visitor event from the frontend beacon
// @Tags analytics
// @Accept json
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /events [post]
func (h *AnalyticsHandler) RecordEvent(c *gin.Context) {
	var req reqdto.RecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	if err := h.cmds.Record(c.Request.Context(), req); err != nil {
		if errors.Is(err, commands.ErrInvalidEventKind) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown event kind",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to record event", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Dashboard aggregates
// @Description Day-of-week and time-slot aggregates over the last 30 days
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} map[string]string
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	view, err := h.q.GetDashboard(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load dashboard", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardView(view))
}

// @Summary Traffic trends
// @Description Daily, weekly and monthly visitor trends
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.TrendsResponse
// @Failure 401 {object} map[string]string
// @Router /analytics/trends [get]
func (h *AnalyticsHandler) Trends(c *gin.Context) {
	view, err := h.q.GetTrends(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load trends", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTrendsView(view))
}
