package api

import (
	"errors"
	"net/http"

	reqdto "airtime/internal/handler/dto/request"
	resdto "airtime/internal/handler/dto/response"
	"airtime/internal/usecase/commands"
	"airtime/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RJHandler struct {
	cmds commands.RJCommands
	q    queries.RJQueries
}

func NewRJHandler(cmds commands.RJCommands, q queries.RJQueries) *RJHandler {
	return &RJHandler{cmds: cmds, q: q}
}

// @Summary Create RJ
// @Description Register a radio jockey under a station
// @Tags rjs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRJRequest true "RJ request"
// @Success 201 {object} resdto.RJResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rjs [post]
func (h *RJHandler) CreateRJ(c *gin.Context) {
	var req reqdto.CreateRJRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.cmds.CreateRJ(c.Request.Context(), req.ToCommand())
	if err != nil {
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

	view, err := h.q.GetByID(c.Request.Context(), result.RJID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRJView(view))
}

// @Summary List RJs
// @Description List registered radio jockeys
// @Tags rjs
// @Produce json
// @Param station_id query string false "Filter by station ID"
// @Success 200 {array} resdto.RJResponse
// @Failure 400 {object} map[string]string
// @Router /rjs [get]
func (h *RJHandler) ListRJs(c *gin.Context) {
	var (
		views []*queries.RJView
		err   error
	)

	if stationParam := c.Query("station_id"); stationParam != "" {
		stationID, perr := uuid.Parse(stationParam)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid station ID format",
			})
			return
		}
		views, err = h.q.ListByStation(c.Request.Context(), stationID)
	} else {
		views, err = h.q.List(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.RJResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromRJView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get RJ
// @Description Get RJ by ID
// @Tags rjs
// @Produce json
// @Param id path string true "RJ ID"
// @Success 200 {object} resdto.RJResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rjs/{id} [get]
func (h *RJHandler) GetRJ(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid RJ ID format",
		})
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRJNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "RJ not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRJView(view))
}

// @Summary Update RJ
// @Description Update RJ details
// @Tags rjs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "RJ ID"
// @Param request body reqdto.CreateRJRequest true "RJ request"
// @Success 200 {object} resdto.RJResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rjs/{id} [put]
func (h *RJHandler) UpdateRJ(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid RJ ID format",
		})
		return
	}

	var req reqdto.CreateRJRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.cmds.UpdateRJ(c.Request.Context(), id, req.ToCommand()); err != nil {
		switch {
		case errors.Is(err, commands.ErrRJNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "RJ not found",
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

	c.JSON(http.StatusOK, resdto.FromRJView(view))
}

// @Summary Delete RJ
// @Description Delete a radio jockey
// @Tags rjs
// @Security BearerAuth
// @Param id path string true "RJ ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rjs/{id} [delete]
func (h *RJHandler) DeleteRJ(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid RJ ID format",
		})
		return
	}

	if err := h.cmds.DeleteRJ(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrRJNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "RJ not found",
			})
		case errors.Is(err, commands.ErrRJInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "RJ is referenced by existing slots",
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
