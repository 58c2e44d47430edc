//go:build e2e

package booking_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"airtime/internal/domain/user"
	"airtime/internal/handler/dto/request"
	"airtime/internal/handler/dto/response"
	"airtime/tests/common/authtest"
	"airtime/tests/common/builder"
	"airtime/tests/common/dbtest"
	"airtime/tests/common/httptest"
	"airtime/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	paymentsURL = "/api/payments"
	adsURL      = "/api/ads"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// seeds an approved station with one RJ and one available slot
func seedBookableSlot(t *testing.T, db *pgxpool.Pool, slotTime time.Time) (stationID, rjID, slotID uuid.UUID) {
	t.Helper()

	adminID := dbtest.CreateTestUser(t, db, "admin@example.com", string(user.RoleAdmin))
	stationID = dbtest.CreateTestStation(t, db, "Radio One")
	dbtest.ApproveTestStation(t, db, stationID, adminID)
	rjID = dbtest.CreateTestRJ(t, db, stationID, "Alex Morning")
	slotID = dbtest.CreateTestSlot(t, db, stationID, rjID, slotTime, 250000)
	return stationID, rjID, slotID
}

// =============================================================================
// TestReserveSlot - Booking creation API tests
// =============================================================================

func (s *BookingSuite) TestReserveSlot() {
	s.Run("Normal case: User can reserve an available slot", func() {
		t := s.T()

		slotTime := time.Now().Add(48 * time.Hour).Truncate(time.Second).UTC()
		stationID, rjID, slotID := seedBookableSlot(t, s.DB, slotTime)

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "advertiser@example.com", string(user.RoleUser))

		reqBody := builder.NewBookingBuilder().WithSlotID(slotID).BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actualRes response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actualRes)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, actualRes.ID)

		expected := &response.BookingResponse{
			UserEmail:   "advertiser@example.com",
			StationID:   stationID,
			StationName: "Radio One",
			RJID:        rjID,
			RJName:      "Alex Morning",
			SlotID:      slotID,
			PriceCents:  250000,
			Status:      "PENDING",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "UserID", "SlotTime", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actualRes, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}

		// Slot flips to BOOKED
		var availability string
		err = s.DB.QueryRow(t.Context(), "SELECT availability_status FROM advertisement_slots WHERE id = $1", slotID).Scan(&availability)
		require.NoError(t, err)
		require.Equal(t, "BOOKED", availability)
	})

	s.Run("Error case: Reserving an already booked slot fails with 409", func() {
		t := s.T()

		slotTime := time.Now().Add(48 * time.Hour).Truncate(time.Second).UTC()
		_, _, slotID := seedBookableSlot(t, s.DB, slotTime)

		token1 := authtest.CreateAndLogin(t, s.DB, s.Router, "first@example.com", string(user.RoleUser))
		token2 := authtest.CreateAndLogin(t, s.DB, s.Router, "second@example.com", string(user.RoleUser))

		reqBody := builder.NewBookingBuilder().WithSlotID(slotID).BuildDTO()

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token1)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token2)
		httptest.AssertErrorResponse(t, w2, http.StatusConflict, "Slot is already booked")
	})

	s.Run("Error case: Returns 404 for non-existent slot", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "advertiser@example.com", string(user.RoleUser))

		reqBody := request.CreateBookingRequest{SlotID: uuid.New()}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		slotTime := time.Now().Add(48 * time.Hour).Truncate(time.Second).UTC()
		_, _, slotID := seedBookableSlot(t, s.DB, slotTime)

		reqBody := builder.NewBookingBuilder().WithSlotID(slotID).BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestConcurrentReservation - Double-booking race tests
// =============================================================================

func (s *BookingSuite) TestConcurrentReservation() {
	s.Run("Race case: Exactly one of N concurrent reservations wins", func() {
		t := s.T()

		const attempts = 10

		slotTime := time.Now().Add(48 * time.Hour).Truncate(time.Second).UTC()
		_, _, slotID := seedBookableSlot(t, s.DB, slotTime)

		tokens := make([]string, attempts)
		for i := range attempts {
			email := "racer" + string(rune('a'+i)) + "@example.com"
			tokens[i] = authtest.CreateAndLogin(t, s.DB, s.Router, email, string(user.RoleUser))
		}

		reqBody := builder.NewBookingBuilder().WithSlotID(slotID).BuildDTO()

		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, tokens[i])
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			default:
				t.Errorf("unexpected status code %d", code)
			}
		}
		require.Equal(t, 1, created, "Exactly one reservation should succeed")
		require.Equal(t, attempts-1, conflicted, "All other reservations should conflict")

		var bookingCount int
		err := s.DB.QueryRow(t.Context(), "SELECT COUNT(*) FROM bookings WHERE slot_id = $1", slotID).Scan(&bookingCount)
		require.NoError(t, err)
		require.Equal(t, 1, bookingCount, "Only one booking row should exist for the slot")
	})
}

// =============================================================================
// TestBookingLifecycle - Booking to payment to ad upload flow
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: Booking, payment, completion, and ad upload succeed in order", func() {
		t := s.T()

		slotTime := time.Now().Add(72 * time.Hour).Truncate(time.Second).UTC()
		_, _, slotID := seedBookableSlot(t, s.DB, slotTime)

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "advertiser@example.com", string(user.RoleUser))

		// Reserve the slot
		bookingReq := builder.NewBookingBuilder().WithSlotID(slotID).BuildDTO()
		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bookingReq, token)
		require.Equal(t, http.StatusCreated, bw.Code, bw.Body.String())

		var booking response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, bw.Body, &booking))

		// Ad upload before payment is rejected
		adReq := request.UploadAdContentRequest{
			BookingID:     booking.ID,
			FilePath:      "/uploads/spot-30s.mp3",
			AdDescription: "30 second morning spot",
		}
		aw := httptest.PerformRequest(t, s.Router, http.MethodPost, adsURL+"/upload", adReq, token)
		httptest.AssertErrorResponse(t, aw, http.StatusBadRequest, "No completed payment for this booking")

		// Create the payment
		paymentReq := builder.NewPaymentBuilder().WithBookingID(booking.ID).BuildDTO()
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, paymentReq, token)
		require.Equal(t, http.StatusCreated, pw.Code, pw.Body.String())

		var payment response.PaymentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, pw.Body, &payment))
		require.Equal(t, "PENDING", payment.Status)

		// Duplicate payment for the same booking and user fails while pending
		dw := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, paymentReq, token)
		httptest.AssertErrorResponse(t, dw, http.StatusConflict, "Payment already initiated for this booking")

		// Complete the payment
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL+"/complete/"+payment.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())

		var completed response.PaymentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &completed))
		require.Equal(t, "COMPLETED", completed.Status)

		// Completing twice fails
		cw2 := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL+"/complete/"+payment.ID.String(), nil, token)
		require.Equal(t, http.StatusConflict, cw2.Code, "Second completion should conflict")

		// Re-creating the payment after settlement reports the settled state
		dw2 := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, paymentReq, token)
		httptest.AssertErrorResponse(t, dw2, http.StatusConflict, "Payment already completed for this booking")

		// Ad upload now succeeds
		aw2 := httptest.PerformRequest(t, s.Router, http.MethodPost, adsURL+"/upload", adReq, token)
		require.Equal(t, http.StatusCreated, aw2.Code, aw2.Body.String())

		var ad response.AdContentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw2.Body, &ad))
		require.Equal(t, booking.ID, ad.BookingID)
		require.Equal(t, "/uploads/spot-30s.mp3", ad.FilePath)

		// Uploaded content shows up on the booking
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, adsURL+"/"+booking.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, lw.Code)

		var ads []*response.AdContentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &ads))
		require.Len(t, ads, 1)

		// The settled payment shows up in the caller's payment listing
		plw := httptest.PerformRequest(t, s.Router, http.MethodGet, paymentsURL+"/user", nil, token)
		require.Equal(t, http.StatusOK, plw.Code)

		var payments []*response.PaymentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, plw.Body, &payments))
		require.Len(t, payments, 1)
		require.Equal(t, "COMPLETED", payments[0].Status)
	})

	s.Run("Normal case: Payment by one user unlocks upload for another", func() {
		t := s.T()

		slotTime := time.Now().Add(72 * time.Hour).Truncate(time.Second).UTC()
		_, _, slotID := seedBookableSlot(t, s.DB, slotTime)

		payerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "payer@example.com", string(user.RoleUser))
		uploaderToken := authtest.CreateAndLogin(t, s.DB, s.Router, "uploader@example.com", string(user.RoleUser))

		bookingReq := builder.NewBookingBuilder().WithSlotID(slotID).BuildDTO()
		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bookingReq, payerToken)
		require.Equal(t, http.StatusCreated, bw.Code, bw.Body.String())

		var booking response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, bw.Body, &booking))

		paymentReq := builder.NewPaymentBuilder().WithBookingID(booking.ID).BuildDTO()
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, paymentReq, payerToken)
		require.Equal(t, http.StatusCreated, pw.Code, pw.Body.String())

		var payment response.PaymentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, pw.Body, &payment))

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL+"/complete/"+payment.ID.String(), nil, payerToken)
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())

		// The upload gate checks the booking's payments, not the uploader's
		adReq := request.UploadAdContentRequest{
			BookingID:     booking.ID,
			FilePath:      "/uploads/agency-cut.mp3",
			AdDescription: "Agency produced spot",
		}
		aw := httptest.PerformRequest(t, s.Router, http.MethodPost, adsURL+"/upload", adReq, uploaderToken)
		require.Equal(t, http.StatusCreated, aw.Code, aw.Body.String())
	})
}

// =============================================================================
// TestGetBooking / TestListBookings - Booking retrieval API tests
// =============================================================================

func (s *BookingSuite) TestGetBooking() {
	s.Run("Normal case: Booking retrieved successfully by ID", func() {
		t := s.T()

		slotTime := time.Now().Add(48 * time.Hour).Truncate(time.Second).UTC()
		_, _, slotID := seedBookableSlot(t, s.DB, slotTime)

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "advertiser@example.com", string(user.RoleUser))

		reqBody := builder.NewBookingBuilder().WithSlotID(slotID).BuildDTO()
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, cw.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &created))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var fetched response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &fetched))
		require.Equal(t, created.ID, fetched.ID)
		require.Equal(t, "PENDING", fetched.Status)
	})

	s.Run("Error case: Returns 404 Not Found for non-existent ID", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "advertiser@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+uuid.New().String(), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: Returns 400 for malformed ID", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "advertiser@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/not-a-uuid", nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *BookingSuite) TestListBookings() {
	s.Run("Normal case: All bookings are listed", func() {
		t := s.T()

		slotTime := time.Now().Add(48 * time.Hour).Truncate(time.Second).UTC()
		stationID, rjID, slot1ID := seedBookableSlot(t, s.DB, slotTime)
		slot2ID := dbtest.CreateTestSlot(t, s.DB, stationID, rjID, slotTime.Add(time.Hour), 180000)

		token1 := authtest.CreateAndLogin(t, s.DB, s.Router, "first@example.com", string(user.RoleUser))
		token2 := authtest.CreateAndLogin(t, s.DB, s.Router, "second@example.com", string(user.RoleUser))

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			builder.NewBookingBuilder().WithSlotID(slot1ID).BuildDTO(), token1)
		require.Equal(t, http.StatusCreated, w1.Code)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			builder.NewBookingBuilder().WithSlotID(slot2ID).BuildDTO(), token2)
		require.Equal(t, http.StatusCreated, w2.Code)

		// The listing is not scoped to the caller
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token1)
		require.Equal(t, http.StatusOK, w.Code)

		var bookings []*response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &bookings))
		require.Len(t, bookings, 2)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
