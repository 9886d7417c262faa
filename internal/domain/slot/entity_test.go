//go:build unit

package slot_test

import (
	"testing"

	"bookit/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot(t *testing.T) {
	t.Run("reconstruct rejects impossible counts", func(t *testing.T) {
		cases := []struct {
			name     string
			capacity int
			booked   int
			errIs    error
		}{
			{name: "negative capacity", capacity: -1, booked: 0, errIs: slot.ErrInvalidCapacity},
			{name: "negative booked count", capacity: 5, booked: -1, errIs: slot.ErrBookedCountOutOfRange},
			{name: "overbooked", capacity: 5, booked: 6, errIs: slot.ErrBookedCountOutOfRange},
			{name: "full slot", capacity: 5, booked: 5},
			{name: "zero capacity", capacity: 0, booked: 0},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				s, err := slot.Reconstruct(1, 1, c.capacity, c.booked)
				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, s)
					return
				}
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, s)
			})
		}
	})

	t.Run("availability", func(t *testing.T) {
		s, err := slot.Reconstruct(1, 1, 10, 7)
		require.NoError(t, err)

		assert.Equal(t, 3, s.AvailableSpots())
		assert.True(t, s.CanAccommodate(3))
		assert.False(t, s.CanAccommodate(4))
		assert.False(t, s.CanAccommodate(0))
	})

	t.Run("reserve up to capacity", func(t *testing.T) {
		s, err := slot.Reconstruct(1, 1, 2, 0)
		require.NoError(t, err)

		require.NoError(t, s.Reserve(2))
		assert.Equal(t, 2, s.BookedCount())
		assert.Equal(t, 0, s.AvailableSpots())
	})

	t.Run("reserve beyond capacity reports remaining spots", func(t *testing.T) {
		s, err := slot.Reconstruct(1, 1, 10, 8)
		require.NoError(t, err)

		err = s.Reserve(3)
		var capErr *slot.CapacityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, 2, capErr.Remaining)
		assert.Equal(t, "Not enough spots available. Only 2 spot(s) remaining.", err.Error())
		assert.Equal(t, 8, s.BookedCount(), "failed reservation must not change the count")
	})

	t.Run("reserve rejects non-positive participants", func(t *testing.T) {
		s, err := slot.Reconstruct(1, 1, 10, 0)
		require.NoError(t, err)

		require.ErrorIs(t, s.Reserve(0), slot.ErrInvalidParticipants)
		require.ErrorIs(t, s.Release(0), slot.ErrInvalidParticipants)
	})

	t.Run("release never goes below zero", func(t *testing.T) {
		s, err := slot.Reconstruct(1, 1, 10, 2)
		require.NoError(t, err)

		require.ErrorIs(t, s.Release(3), slot.ErrReleaseExceedsBooked)
		assert.Equal(t, 2, s.BookedCount())

		require.NoError(t, s.Release(2))
		assert.Equal(t, 0, s.BookedCount())
	})

	t.Run("reserve then release restores the count", func(t *testing.T) {
		s, err := slot.Reconstruct(1, 1, 10, 4)
		require.NoError(t, err)

		require.NoError(t, s.Reserve(3))
		require.NoError(t, s.Release(3))
		assert.Equal(t, 4, s.BookedCount())
	})
}
