//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"airtime/internal/handler/api"
	reqdto "airtime/internal/handler/dto/request"
	resdto "airtime/internal/handler/dto/response"
	"airtime/internal/usecase/commands"
	"airtime/internal/usecase/queries"
	"airtime/tests/common/httptest"
	"airtime/tests/common/testutil"
	commandsmock "airtime/tests/mock/commands"
	queriesmock "airtime/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdContentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAdContentCommands
	mockQueries  *queriesmock.MockAdContentQueries
	handler      *api.AdContentHandler
	userID       uuid.UUID
}

func (s *AdContentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdContentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAdContentQueries(s.mockCtrl)
	s.handler = api.NewAdContentHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	withAuth := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
			}
			h(c)
		}
	}

	s.router.POST("/ads/upload", withAuth(s.handler.Upload))
	s.router.GET("/ads/:bookingId", withAuth(s.handler.ListByBooking))
}

func (s *AdContentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdContentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdContentHandlerTestSuite))
}

func (s *AdContentHandlerTestSuite) TestUpload() {
	url := "/ads/upload"

	adContentID := uuid.New()
	bookingID := uuid.New()
	reqBody := reqdto.UploadAdContentRequest{
		BookingID:     bookingID,
		FilePath:      "/uploads/spot-30s.mp3",
		AdDescription: "30 second morning spot",
	}
	returnView := &queries.AdContentView{
		ID:            adContentID,
		BookingID:     bookingID,
		UserID:        s.userID,
		FilePath:      "/uploads/spot-30s.mp3",
		AdDescription: "30 second morning spot",
		CreatedAt:     time.Now().UTC(),
	}

	s.Run("success: returns 201 Created with ad content detail", func() {
		s.mockCommands.EXPECT().Upload(gomock.Any(), reqBody.ToCommand(), s.userID).
			Return(&commands.UploadAdContentResult{AdContentID: adContentID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), adContentID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.AdContentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(adContentID, response.ID)
		s.Equal(bookingID, response.BookingID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: booking_id (required)", mutate: testutil.Field("booking_id", nil)},
			{name: "missing field: file_path (required)", mutate: testutil.Field("file_path", nil)},
			{name: "missing field: ad_description (required)", mutate: testutil.Field("ad_description", nil)},
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
				name:           "payment not completed",
				commandsError:  commands.ErrPaymentNotCompleted,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "No completed payment for this booking",
			},
			{
				name:           "uploader not found",
				commandsError:  commands.ErrUploaderNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
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
				s.mockCommands.EXPECT().Upload(gomock.Any(), reqBody.ToCommand(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AdContentHandlerTestSuite) TestListByBooking() {
	bookingID := uuid.New()
	url := "/ads/" + bookingID.String()

	s.Run("success: returns the booking's ad contents", func() {
		views := []*queries.AdContentView{
			{ID: uuid.New(), BookingID: bookingID, UserID: s.userID, FilePath: "/uploads/a.mp3"},
			{ID: uuid.New(), BookingID: bookingID, UserID: s.userID, FilePath: "/uploads/b.mp3"},
		}
		s.mockQueries.EXPECT().ListByBooking(gomock.Any(), bookingID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.AdContentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: 400 Bad Request for malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/ads/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})
}
