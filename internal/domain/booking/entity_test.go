//go:build unit

package booking_test

import (
	"testing"

	"airtime/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	userID := uuid.New()
	stationID := uuid.New()
	rjID := uuid.New()
	slotID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := booking.NewBooking(userID, stationID, rjID, slotID)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, userID, actual.UserID())
		assert.Equal(t, stationID, actual.StationID())
		assert.Equal(t, rjID, actual.RJID())
		assert.Equal(t, slotID, actual.SlotID())
		assert.Equal(t, booking.StatusPending, actual.Status())
	})

	t.Run("required id validation", func(t *testing.T) {
		cases := []struct {
			name                            string
			userID, stationID, rjID, slotID uuid.UUID
			errIs                           error
		}{
			{"missing user id", uuid.Nil, stationID, rjID, slotID, booking.ErrUserIDRequired},
			{"missing station id", userID, uuid.Nil, rjID, slotID, booking.ErrStationIDRequired},
			{"missing rj id", userID, stationID, uuid.Nil, slotID, booking.ErrRJIDRequired},
			{"missing slot id", userID, stationID, rjID, uuid.Nil, booking.ErrSlotIDRequired},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := booking.NewBooking(c.userID, c.stationID, c.rjID, c.slotID)
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
			})
		}
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b1, err1 := booking.NewBooking(userID, stationID, rjID, slotID)
		b2, err2 := booking.NewBooking(userID, stationID, rjID, slotID)
		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, b1.ID(), b2.ID())
	})
}

func TestStatus(t *testing.T) {
	t.Run("pending is the only valid status", func(t *testing.T) {
		assert.True(t, booking.StatusPending.IsValid())
		assert.False(t, booking.Status("CONFIRMED").IsValid())
		assert.False(t, booking.Status("").IsValid())
	})
}
