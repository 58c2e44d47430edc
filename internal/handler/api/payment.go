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

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Create payment
// @Description Record a pending payment for a booking
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentRequest true "Payment request"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.cmds.CreatePayment(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrPaymentAlreadyInitiated):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment already initiated for this booking",
			})
		case errors.Is(err, commands.ErrPaymentAlreadyCompleted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment already completed for this booking",
			})
		case errors.Is(err, commands.ErrDuplicatePayment):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment already exists for this booking",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.PaymentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPaymentView(view))
}

// @Summary Complete payment
// @Description Mark a pending payment as completed
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments/complete/{id} [post]
func (h *PaymentHandler) CompletePayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment ID format",
		})
		return
	}

	if err := h.cmds.CompletePayment(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment not found",
			})
		case errors.Is(err, commands.ErrPaymentAlreadyCompleted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment already completed",
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

	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary List user payments
// @Description List payments made by the authenticated user
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PaymentResponse
// @Failure 401 {object} map[string]string
// @Router /payments/user [get]
func (h *PaymentHandler) ListUserPayments(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PaymentResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromPaymentView(view)
	}

	c.JSON(http.StatusOK, response)
}
