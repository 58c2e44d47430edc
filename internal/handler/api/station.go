package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "airtime/internal/handler/dto/request"
	resdto "airtime/internal/handler/dto/response"
	"airtime/internal/handler/middleware"
	"airtime/internal/usecase/commands"
	"airtime/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StationHandler struct {
	cmds commands.StationCommands
	q    queries.StationQueries
}

func NewStationHandler(cmds commands.StationCommands, q queries.StationQueries) *StationHandler {
	return &StationHandler{cmds: cmds, q: q}
}

// @Summary Create station
// @Description Register a radio station and open its approval request
// @Tags stations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateStationRequest true "Station request"
// @Success 201 {object} resdto.StationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /stations [post]
func (h *StationHandler) CreateStation(c *gin.Context) {
	var req reqdto.CreateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.cmds.CreateStation(c.Request.Context(), req.ToCommand())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.StationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromStationView(view))
}

// @Summary List stations
// @Description List registered radio stations
// @Tags stations
// @Produce json
// @Success 200 {array} resdto.StationResponse
// @Router /stations [get]
func (h *StationHandler) ListStations(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.StationResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromStationView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get station
// @Description Get station by ID
// @Tags stations
// @Produce json
// @Param id path string true "Station ID"
// @Success 200 {object} resdto.StationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stations/{id} [get]
func (h *StationHandler) GetStation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid station ID format",
		})
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrStationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Station not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromStationView(view))
}

// @Summary Update station
// @Description Update station details
// @Tags stations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Station ID"
// @Param request body reqdto.CreateStationRequest true "Station request"
// @Success 200 {object} resdto.StationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stations/{id} [put]
func (h *StationHandler) UpdateStation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid station ID format",
		})
		return
	}

	var req reqdto.CreateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.cmds.UpdateStation(c.Request.Context(), id, req.ToCommand()); err != nil {
		switch {
		case errors.Is(err, commands.ErrStationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Station not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromStationView(view))
}

// @Summary Delete station
// @Description Delete a radio station
// @Tags stations
// @Security BearerAuth
// @Param id path string true "Station ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /stations/{id} [delete]
func (h *StationHandler) DeleteStation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid station ID format",
		})
		return
	}

	if err := h.cmds.DeleteStation(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrStationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Station not found",
			})
		case errors.Is(err, commands.ErrStationInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Station is referenced by existing records",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Approve station
// @Description Approve a pending station registration
// @Tags stations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Station ID"
// @Success 200 {object} resdto.StationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /stations/{id}/approve [post]
func (h *StationHandler) ApproveStation(c *gin.Context) {
	h.decideApproval(c, h.cmds.ApproveStation)
}

// @Summary Reject station
// @Description Reject a pending station registration
// @Tags stations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Station ID"
// @Success 200 {object} resdto.StationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /stations/{id}/reject [post]
func (h *StationHandler) RejectStation(c *gin.Context) {
	h.decideApproval(c, h.cmds.RejectStation)
}

func (h *StationHandler) decideApproval(c *gin.Context, decide func(ctx context.Context, stationID, adminID uuid.UUID) error) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	stationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid station ID format",
		})
		return
	}

	if err := decide(c.Request.Context(), stationID, adminID); err != nil {
		switch {
		case errors.Is(err, commands.ErrStationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Station not found",
			})
		case errors.Is(err, commands.ErrNoPendingApproval):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No pending approval request for this station",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), stationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromStationView(view))
}

// @Summary List pending approvals
// @Description List station approval requests awaiting a decision
// @Tags stations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ApprovalResponse
// @Failure 401 {object} map[string]string
// @Router /stations/approvals/pending [get]
func (h *StationHandler) ListPendingApprovals(c *gin.Context) {
	h.listApprovals(c, h.q.ListPendingApprovals)
}

// @Summary List rejected approvals
// @Description List station approval requests that were rejected
// @Tags stations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ApprovalResponse
// @Failure 401 {object} map[string]string
// @Router /stations/approvals/rejected [get]
func (h *StationHandler) ListRejectedApprovals(c *gin.Context) {
	h.listApprovals(c, h.q.ListRejectedApprovals)
}

func (h *StationHandler) listApprovals(c *gin.Context, list func(ctx context.Context) ([]*queries.ApprovalView, error)) {
	views, err := list(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ApprovalResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromApprovalView(view)
	}

	c.JSON(http.StatusOK, response)
}
