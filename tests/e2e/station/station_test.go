//go:build e2e

package station_test

import (
	"net/http"
	"testing"
	"time"

	"airtime/internal/domain/user"
	"airtime/internal/handler/dto/response"
	"airtime/tests/common/authtest"
	"airtime/tests/common/builder"
	"airtime/tests/common/dbtest"
	"airtime/tests/common/httptest"
	"airtime/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	stationsURL = "/api/stations"
	slotsURL    = "/api/slots"
)

type StationSuite struct {
	e2e.SharedSuite
}

func (s *StationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestStationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StationSuite))
}

// =============================================================================
// TestCreateStation - Station registration and role enforcement
// =============================================================================

func (s *StationSuite) TestCreateStation() {
	s.Run("Normal case: Station operator can register a station", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "operator@example.com", string(user.RoleStation))

		reqBody := builder.NewStationBuilder().BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, stationsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.StationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "Radio One", created.StationName)
		require.Equal(t, "PENDING", created.ApprovalStatus, "New stations start unapproved")
	})

	s.Run("Error case: Regular user cannot register a station", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "regular@example.com", string(user.RoleUser))

		reqBody := builder.NewStationBuilder().BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, stationsURL, reqBody, token)
		require.Equal(t, http.StatusForbidden, w.Code, "User role should not create stations")
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		reqBody := builder.NewStationBuilder().BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, stationsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *StationSuite) TestListStations() {
	s.Run("Normal case: Only approved stations are listed publicly", func() {
		t := s.T()

		adminID := dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
		approvedID := dbtest.CreateTestStation(t, s.DB, "Radio One")
		dbtest.ApproveTestStation(t, s.DB, approvedID, adminID)
		dbtest.CreateTestStation(t, s.DB, "Radio Two")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, stationsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var stations []*response.StationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &stations))
		require.Len(t, stations, 1)
		require.Equal(t, approvedID, stations[0].ID)
		require.Equal(t, "APPROVED", stations[0].ApprovalStatus)
	})
}

// =============================================================================
// TestApprovalFlow - Admin approval gate for slot publishing
// =============================================================================

func (s *StationSuite) TestApprovalFlow() {
	s.Run("Normal case: Approved station can publish slots, unapproved cannot", func() {
		t := s.T()

		operatorToken := authtest.CreateAndLogin(t, s.DB, s.Router, "operator@example.com", string(user.RoleStation))
		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")

		stationID := dbtest.CreateTestStation(t, s.DB, "Radio One")
		rjID := dbtest.CreateTestRJ(t, s.DB, stationID, "Alex Morning")

		slotReq := builder.NewSlotBuilder().
			WithStationID(stationID).
			WithRJID(rjID).
			WithSlotTime(time.Now().Add(48 * time.Hour).Truncate(time.Second).UTC()).
			BuildDTO()

		// Pending stations cannot publish
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, slotsURL, slotReq, operatorToken)
		require.Equal(t, http.StatusForbidden, w.Code, "Pending station should not publish slots")

		// Admin approves
		aw := httptest.PerformRequest(t, s.Router, http.MethodPost, stationsURL+"/"+stationID.String()+"/approve", nil, adminToken)
		require.Equal(t, http.StatusOK, aw.Code, aw.Body.String())

		var approved response.StationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &approved))
		require.Equal(t, "APPROVED", approved.ApprovalStatus)

		// Now publishing succeeds
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, slotsURL, slotReq, operatorToken)
		require.Equal(t, http.StatusCreated, w2.Code, w2.Body.String())

		var slot response.SlotResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &slot))
		require.Equal(t, "AVAILABLE", slot.AvailabilityStatus)

		// Duplicate station, RJ, and time is rejected
		w3 := httptest.PerformRequest(t, s.Router, http.MethodPost, slotsURL, slotReq, operatorToken)
		require.Equal(t, http.StatusConflict, w3.Code, "Duplicate slot should conflict")
	})

	s.Run("Error case: Approving twice returns 409", func() {
		t := s.T()

		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")
		stationID := dbtest.CreateTestStation(t, s.DB, "Radio One")

		url := stationsURL + "/" + stationID.String() + "/approve"
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, adminToken)
		require.Equal(t, http.StatusOK, w1.Code, w1.Body.String())

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, adminToken)
		require.Equal(t, http.StatusConflict, w2.Code, "No pending request should remain")
	})

	s.Run("Normal case: Rejected stations appear in the rejected listing", func() {
		t := s.T()

		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")
		stationID := dbtest.CreateTestStation(t, s.DB, "Radio Two")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, stationsURL+"/"+stationID.String()+"/reject", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, stationsURL+"/approvals/rejected", nil, adminToken)
		require.Equal(t, http.StatusOK, lw.Code)

		var approvals []*response.ApprovalResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &approvals))
		require.Len(t, approvals, 1)
		require.Equal(t, stationID, approvals[0].StationID)
		require.Equal(t, "REJECTED", approvals[0].Status)
	})

	s.Run("Error case: Station operator cannot approve", func() {
		t := s.T()

		operatorToken := authtest.CreateAndLogin(t, s.DB, s.Router, "operator@example.com", string(user.RoleStation))
		stationID := dbtest.CreateTestStation(t, s.DB, "Radio One")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, stationsURL+"/"+stationID.String()+"/approve", nil, operatorToken)
		require.Equal(t, http.StatusForbidden, w.Code, "Approval requires the admin role")
	})
}

// =============================================================================
// TestSlotValidation - Slot scheduling constraints
// =============================================================================

func (s *StationSuite) TestSlotValidation() {
	s.Run("Error case: Slot time in the past is rejected", func() {
		t := s.T()

		operatorToken := authtest.CreateAndLogin(t, s.DB, s.Router, "operator@example.com", string(user.RoleStation))
		adminID := dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
		stationID := dbtest.CreateTestStation(t, s.DB, "Radio One")
		dbtest.ApproveTestStation(t, s.DB, stationID, adminID)
		rjID := dbtest.CreateTestRJ(t, s.DB, stationID, "Alex Morning")

		slotReq := builder.NewSlotBuilder().
			WithStationID(stationID).
			WithRJID(rjID).
			WithSlotTime(time.Now().Add(-time.Hour).Truncate(time.Second).UTC()).
			BuildDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, slotsURL, slotReq, operatorToken)
		require.Equal(t, http.StatusBadRequest, w.Code, "Past slot time should be rejected")
	})

	s.Run("Normal case: Availability filter hides booked slots", func() {
		t := s.T()

		adminID := dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
		stationID := dbtest.CreateTestStation(t, s.DB, "Radio One")
		dbtest.ApproveTestStation(t, s.DB, stationID, adminID)
		rjID := dbtest.CreateTestRJ(t, s.DB, stationID, "Alex Morning")

		slotTime := time.Now().Add(48 * time.Hour).Truncate(time.Second).UTC()
		openSlotID := dbtest.CreateTestSlot(t, s.DB, stationID, rjID, slotTime, 250000)
		bookedSlotID := dbtest.CreateTestSlot(t, s.DB, stationID, rjID, slotTime.Add(time.Hour), 250000)

		userToken := authtest.CreateAndLogin(t, s.DB, s.Router, "advertiser@example.com", string(user.RoleUser))
		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings",
			builder.NewBookingBuilder().WithSlotID(bookedSlotID).BuildDTO(), userToken)
		require.Equal(t, http.StatusCreated, bw.Code, bw.Body.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, slotsURL+"?available=true", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var slots []*response.SlotResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &slots))
		require.Len(t, slots, 1)
		require.Equal(t, openSlotID, slots[0].ID)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, slotsURL, nil, "")
		require.Equal(t, http.StatusOK, w2.Code)

		var allSlots []*response.SlotResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &allSlots))
		require.Len(t, allSlots, 2)
	})
}
