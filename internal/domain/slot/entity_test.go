//go:build unit

package slot_test

import (
	"testing"
	"time"

	"airtime/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	stationID := uuid.New()
	rjID := uuid.New()
	slotTime := time.Date(2026, 9, 15, 8, 30, 0, 0, time.FixedZone("IST", 19800))

	t.Run("basic success case", func(t *testing.T) {
		actual, err := slot.NewSlot(stationID, rjID, slotTime, 250000)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, stationID, actual.StationID())
		assert.Equal(t, rjID, actual.RJID())
		assert.Equal(t, int64(250000), actual.Price().Cents())
		assert.Equal(t, slot.StatusAvailable, actual.Status())
		assert.True(t, actual.IsAvailable())
	})

	t.Run("slot time is normalized to UTC", func(t *testing.T) {
		actual, err := slot.NewSlot(stationID, rjID, slotTime, 250000)
		require.NoError(t, err)

		assert.Equal(t, time.UTC, actual.SlotTime().Location())
		assert.True(t, actual.SlotTime().Equal(slotTime))
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name       string
			stationID  uuid.UUID
			rjID       uuid.UUID
			slotTime   time.Time
			priceCents int64
			errIs      error
		}{
			{"missing station id", uuid.Nil, rjID, slotTime, 250000, slot.ErrStationIDRequired},
			{"missing rj id", stationID, uuid.Nil, slotTime, 250000, slot.ErrRJIDRequired},
			{"zero slot time", stationID, rjID, time.Time{}, 250000, slot.ErrInvalidSlotTime},
			{"negative price", stationID, rjID, slotTime, -1, slot.ErrNegativePrice},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := slot.NewSlot(c.stationID, c.rjID, c.slotTime, c.priceCents)
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
			})
		}
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		actual, err := slot.NewSlot(stationID, rjID, slotTime, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), actual.Price().Cents())
	})
}

func TestMoney(t *testing.T) {
	t.Run("units conversion", func(t *testing.T) {
		m, err := slot.NewMoney(250000)
		require.NoError(t, err)
		assert.Equal(t, int64(250000), m.Cents())
		assert.InDelta(t, 2500.0, m.Units(), 0.001)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := slot.NewMoney(-100)
		require.Error(t, err)
	})
}
