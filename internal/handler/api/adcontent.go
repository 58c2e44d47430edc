package api

import (
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

type AdContentHandler struct {
	cmds commands.AdContentCommands
	q    queries.AdContentQueries
}

func NewAdContentHandler(cmds commands.AdContentCommands, q queries.AdContentQueries) *AdContentHandler {
	return &AdContentHandler{cmds: cmds, q: q}
}

// @Summary Upload ad content
// @Description Attach creative material to a paid booking
// @Tags ads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UploadAdContentRequest true "Upload request"
// @Success 201 {object} resdto.AdContentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /ads/upload [post]
func (h *AdContentHandler) Upload(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UploadAdContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.cmds.Upload(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrPaymentNotCompleted):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No completed payment for this booking",
			})
		case errors.Is(err, commands.ErrUploaderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.AdContentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAdContentView(view))
}

// @Summary List booking ad contents
// @Description List creative material uploaded for a booking
// @Tags ads
// @Produce json
// @Security BearerAuth
// @Param bookingId path string true "Booking ID"
// @Success 200 {array} resdto.AdContentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /ads/{bookingId} [get]
func (h *AdContentHandler) ListByBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	views, err := h.q.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.AdContentResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromAdContentView(view)
	}

	c.JSON(http.StatusOK, response)
}
