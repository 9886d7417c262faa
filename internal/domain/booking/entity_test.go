//go:build unit

package booking_test

import (
	"testing"

	"bookit/internal/domain/booking"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact(t *testing.T) booking.Contact {
	t.Helper()
	c, err := booking.NewContact("Jane Doe", "jane@example.com", "5551234567")
	require.NoError(t, err)
	return c
}

func TestNewContact(t *testing.T) {
	t.Run("normalizes input", func(t *testing.T) {
		c, err := booking.NewContact("  Jane Doe ", " Jane@Example.COM ", " 555-123-4567 ")
		require.NoError(t, err)

		assert.Equal(t, "Jane Doe", c.Name())
		assert.Equal(t, "jane@example.com", c.Email())
		assert.Equal(t, "555-123-4567", c.Phone())
	})

	cases := []struct {
		name  string
		in    [3]string
		errIs error
	}{
		{name: "short name", in: [3]string{"J", "jane@example.com", "5551234567"}, errIs: booking.ErrInvalidName},
		{name: "blank name", in: [3]string{"   ", "jane@example.com", "5551234567"}, errIs: booking.ErrInvalidName},
		{name: "email without domain dot", in: [3]string{"Jane", "jane@example", "5551234567"}, errIs: booking.ErrInvalidEmail},
		{name: "email with space", in: [3]string{"Jane", "ja ne@example.com", "5551234567"}, errIs: booking.ErrInvalidEmail},
		{name: "short phone", in: [3]string{"Jane", "jane@example.com", "555123"}, errIs: booking.ErrInvalidPhone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := booking.NewContact(c.in[0], c.in[1], c.in[2])
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestNewBooking(t *testing.T) {
	t.Run("total is base minus discount", func(t *testing.T) {
		code := "SAVE10"
		b, err := booking.NewBooking(1, 2, validContact(t), 2, decimal.RequireFromString("50"), &code, decimal.RequireFromString("10"))
		require.NoError(t, err)

		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, "90.00", b.TotalPrice().StringFixed(2))
		assert.Equal(t, "10.00", b.DiscountAmount().StringFixed(2))
		assert.True(t, b.HasPromo())
	})

	t.Run("discount equal to base yields zero total", func(t *testing.T) {
		code := "FLAT5"
		b, err := booking.NewBooking(1, 2, validContact(t), 1, decimal.RequireFromString("3"), &code, decimal.RequireFromString("3"))
		require.NoError(t, err)
		assert.True(t, b.TotalPrice().IsZero())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := booking.NewBooking(1, 2, validContact(t), 0, decimal.RequireFromString("10"), nil, decimal.Zero)
		require.ErrorIs(t, err, booking.ErrInvalidParticipants)

		_, err = booking.NewBooking(1, 2, validContact(t), 1, decimal.RequireFromString("10"), nil, decimal.RequireFromString("-1"))
		require.ErrorIs(t, err, booking.ErrNegativePrice)

		_, err = booking.NewBooking(1, 2, validContact(t), 1, decimal.RequireFromString("10"), nil, decimal.RequireFromString("10.01"))
		require.ErrorIs(t, err, booking.ErrDiscountExceedsBase)
	})
}

func TestCancel(t *testing.T) {
	b, err := booking.NewBooking(1, 2, validContact(t), 1, decimal.RequireFromString("10"), nil, decimal.Zero)
	require.NoError(t, err)
	assert.False(t, b.HasPromo())

	require.NoError(t, b.Cancel())
	assert.Equal(t, booking.StatusCancelled, b.Status())

	require.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCancelled)
	assert.Equal(t, booking.StatusCancelled, b.Status())
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled"} {
		st, err := booking.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, st.String())
	}
	_, err := booking.ParseStatus("canceled")
	require.ErrorIs(t, err, booking.ErrInvalidStatus)
}
