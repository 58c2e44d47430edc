//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"airtime/internal/handler/api"
	resdto "airtime/internal/handler/dto/response"
	"airtime/internal/usecase/commands"
	"airtime/internal/usecase/queries"
	"airtime/tests/common/builder"
	"airtime/tests/common/httptest"
	"airtime/tests/common/testutil"
	commandsmock "airtime/tests/mock/commands"
	queriesmock "airtime/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockPaymentQueries
	handler      *api.PaymentHandler
	userID       uuid.UUID
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	withAuth := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
			}
			h(c)
		}
	}

	s.router.POST("/payments", withAuth(s.handler.CreatePayment))
	s.router.POST("/payments/complete/:id", withAuth(s.handler.CompletePayment))
	s.router.GET("/payments/user", withAuth(s.handler.ListUserPayments))
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestCreatePayment() {
	url := "/payments"

	paymentID := uuid.New()
	reqBody := builder.NewPaymentBuilder().BuildDTO()
	returnView := builder.NewPaymentBuilder().BuildReadModel()
	returnView.ID = paymentID

	s.Run("success: returns 201 Created with payment detail", func() {
		s.mockCommands.EXPECT().CreatePayment(gomock.Any(), reqBody.ToCommand(), s.userID).
			Return(&commands.CreatePaymentResult{PaymentID: paymentID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), paymentID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(paymentID, response.ID)
		s.Equal("PENDING", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: booking_id (required)", mutate: testutil.Field("booking_id", nil)},
			{name: "missing field: amount_cents (required)", mutate: testutil.Field("amount_cents", nil)},
			{name: "missing field: transaction_id (required)", mutate: testutil.Field("transaction_id", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "payment already initiated",
				commandsError:  commands.ErrPaymentAlreadyInitiated,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Payment already initiated for this booking",
			},
			{
				name:           "payment already completed",
				commandsError:  commands.ErrPaymentAlreadyCompleted,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Payment already completed for this booking",
			},
			{
				name:           "duplicate payment",
				commandsError:  commands.ErrDuplicatePayment,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Payment already exists for this booking",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreatePayment(gomock.Any(), reqBody.ToCommand(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *PaymentHandlerTestSuite) TestCompletePayment() {
	paymentID := uuid.New()
	returnView := builder.NewPaymentBuilder().AsCompleted().BuildReadModel()
	returnView.ID = paymentID

	url := "/payments/complete/" + paymentID.String()

	s.Run("success: returns 200 OK with completed payment", func() {
		s.mockCommands.EXPECT().CompletePayment(gomock.Any(), paymentID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), paymentID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("COMPLETED", response.Status)
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/complete/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid payment ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "payment not found",
				commandsError:  commands.ErrPaymentNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Payment not found",
			},
			{
				name:           "already completed",
				commandsError:  commands.ErrPaymentAlreadyCompleted,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Payment already completed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CompletePayment(gomock.Any(), paymentID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *PaymentHandlerTestSuite) TestListUserPayments() {
	url := "/payments/user"

	s.Run("success: returns the caller's payments", func() {
		first := builder.NewPaymentBuilder().BuildReadModel()
		second := builder.NewPaymentBuilder().AsCompleted().BuildReadModel()
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return([]*queries.PaymentView{first, second}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: returns 500 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
