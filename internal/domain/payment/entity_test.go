//go:build unit

package payment_test

import (
	"testing"

	"airtime/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	bookingID := uuid.New()
	userID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := payment.NewPayment(bookingID, userID, 250000, "txn-12345")
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, bookingID, actual.BookingID())
		assert.Equal(t, userID, actual.UserID())
		assert.Equal(t, int64(250000), actual.AmountCents())
		assert.Equal(t, "txn-12345", actual.TransactionID())
		assert.Equal(t, payment.StatusPending, actual.Status())
	})

	t.Run("transaction id is trimmed", func(t *testing.T) {
		actual, err := payment.NewPayment(bookingID, userID, 100, "  txn-xyz  ")
		require.NoError(t, err)
		assert.Equal(t, "txn-xyz", actual.TransactionID())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name          string
			bookingID     uuid.UUID
			userID        uuid.UUID
			transactionID string
			errIs         error
		}{
			{"missing booking id", uuid.Nil, userID, "txn-1", payment.ErrBookingIDRequired},
			{"missing user id", bookingID, uuid.Nil, "txn-1", payment.ErrUserIDRequired},
			{"empty transaction id", bookingID, userID, "", payment.ErrTransactionIDRequired},
			{"whitespace transaction id", bookingID, userID, "   ", payment.ErrTransactionIDRequired},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := payment.NewPayment(c.bookingID, c.userID, 100, c.transactionID)
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
			})
		}
	})
}

func TestStatus(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		assert.True(t, payment.StatusPending.IsValid())
		assert.True(t, payment.StatusCompleted.IsValid())
		assert.False(t, payment.Status("FAILED").IsValid())
	})

	t.Run("completed is terminal", func(t *testing.T) {
		assert.True(t, payment.StatusCompleted.IsTerminal())
		assert.False(t, payment.StatusPending.IsTerminal())
	})
}
