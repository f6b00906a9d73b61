package api

import (
	"errors"
	"net/http"
	"strconv"

	"pupperazi-api/internal/domain/lead"
	reqdto "pupperazi-api/internal/handler/dto/request"
	resdto "pupperazi-api/internal/handler/dto/response"
	"pupperazi-api/internal/handler/httperr"
	"pupperazi-api/internal/usecase/commands"
	"pupperazi-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LeadHandler struct {
	cmds commands.LeadCommands
	q    queries.LeadQueries
}

func NewLeadHandler(cmds commands.LeadCommands, q queries.LeadQueries) *LeadHandler {
	return &LeadHandler{cmds: cmds, q: q}
}

// @Summary Submit inquiry
// @Description Submit a grooming inquiry from the public contact form
// @Tags leads
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitLeadRequest true "Inquiry payload"
// @Success 200 {object} resdto.SubmitLeadResponse
// @Failure 400 {object} map[string]any
// @Failure 500 {object} map[string]string
// @Router /leads [post]
func (h *LeadHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), req)
	if err != nil {
		var verr *lead.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validation failed",
				"details": verr.Fields,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to process inquiry",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubmitLeadResult(result))
}

// @Summary Get lead
// @Description Get a single inquiry by ID
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 200 {object} resdto.LeadResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /leads/{id} [get]
func (h *LeadHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetLead(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrLeadNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load lead", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLeadView(view))
}

// @Summary List leads
// @Description List recent inquiries, newest first
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 100)"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	var limit int32
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil && iv > 0 {
			limit = int32(iv)
		}
	}
	views, err := h.q.ListLeads(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list leads", nil)
		return
	}
	items := make([]*resdto.LeadResponse, len(views))
	for i, v := range views {
		items[i] = resdto.FromLeadView(v)
	}
	c.JSON(http.StatusOK, gin.H{"leads": items})
}
