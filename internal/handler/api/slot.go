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

type SlotHandler struct {
	cmds commands.SlotCommands
	q    queries.SlotQueries
}

func NewSlotHandler(cmds commands.SlotCommands, q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{cmds: cmds, q: q}
}

// @Summary Create slot
// @Description Publish an advertisement slot for an approved station
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSlotRequest true "Slot request"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /slots [post]
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.cmds.CreateSlot(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrStationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Station not found",
			})
		case errors.Is(err, commands.ErrRJNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "RJ not found",
			})
		case errors.Is(err, commands.ErrStationNotApproved):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Station is not approved",
			})
		case errors.Is(err, commands.ErrRJStationMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "RJ does not belong to this station",
			})
		case errors.Is(err, commands.ErrDuplicateSlot):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot already exists for this RJ and time",
			})
		case errors.Is(err, commands.ErrSlotTimeInPast):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Slot time must be in the future",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.SlotID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSlotView(view))
}

// @Summary List slots
// @Description List advertisement slots; pass available=true to narrow to open inventory
// @Tags slots
// @Produce json
// @Param available query bool false "Only available slots"
// @Success 200 {array} resdto.SlotResponse
// @Router /slots [get]
func (h *SlotHandler) ListSlots(c *gin.Context) {
	availableOnly := c.Query("available") == "true"

	views, err := h.q.List(c.Request.Context(), availableOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.SlotResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromSlotView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get slot
// @Description Get slot by ID
// @Tags slots
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/{id} [get]
func (h *SlotHandler) GetSlot(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary List station slots
// @Description List slots published by a station
// @Tags slots
// @Produce json
// @Param stationId path string true "Station ID"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Router /slots/station/{stationId} [get]
func (h *SlotHandler) ListStationSlots(c *gin.Context) {
	stationID, err := uuid.Parse(c.Param("stationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid station ID format",
		})
		return
	}

	views, err := h.q.ListByStation(c.Request.Context(), stationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.SlotResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromSlotView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update slot
// @Description Update slot time and price
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param request body reqdto.UpdateSlotRequest true "Slot update request"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /slots/{id} [put]
func (h *SlotHandler) UpdateSlot(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	var req reqdto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.cmds.UpdateSlot(c.Request.Context(), id, req.ToCommand()); err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, commands.ErrDuplicateSlot):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot already exists for this RJ and time",
			})
		case errors.Is(err, commands.ErrSlotTimeInPast):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Slot time must be in the future",
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

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary Delete slot
// @Description Delete an advertisement slot
// @Tags slots
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /slots/{id} [delete]
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	if err := h.cmds.DeleteSlot(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, commands.ErrSlotInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is referenced by existing bookings",
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
