//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"bookit/internal/infra"
	"bookit/internal/usecase/queries"
	"bookit/tests/common/builder"
	queriesmock "bookit/tests/mock/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSlotQueries_Availability(t *testing.T) {
	ctx := context.Background()
	slotNotFound := infra.WrapRepoErr("slot not found", pgx.ErrNoRows, infra.KindNotFound)

	testCases := []struct {
		name          string
		participants  int
		spots         int32
		storeErr      error
		wantAvailable bool
		wantErr       error
	}{
		{name: "enough spots", participants: 3, spots: 5, wantAvailable: true},
		{name: "exactly the remaining spots", participants: 5, spots: 5, wantAvailable: true},
		{name: "too many participants", participants: 6, spots: 5, wantAvailable: false},
		{name: "zero participants never fit", participants: 0, spots: 5, wantAvailable: false},
		{name: "slot not found", participants: 1, storeErr: slotNotFound, wantErr: queries.ErrSlotNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockSlotReadStore(ctrl)
			store.EXPECT().AvailableSpots(ctx, int64(3)).Return(tc.spots, tc.storeErr)
			q := queries.NewSlotQueries(store)

			a, err := q.Availability(ctx, 3, tc.participants)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantAvailable, a.Available)
			assert.Equal(t, tc.spots, a.AvailableSpots)
			assert.Equal(t, int64(3), a.SlotID)
		})
	}
}

func TestSlotQueries_CheckAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("missing slot is reported as unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSlotReadStore(ctrl)
		store.EXPECT().AvailableSpots(ctx, int64(9)).
			Return(int32(0), infra.WrapRepoErr("slot not found", pgx.ErrNoRows, infra.KindNotFound))

		ok, err := queries.NewSlotQueries(store).CheckAvailability(ctx, 9, 1)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSlotReadStore(ctrl)
		store.EXPECT().AvailableSpots(ctx, int64(9)).Return(int32(0), errors.New("timeout"))

		_, err := queries.NewSlotQueries(store).CheckAvailability(ctx, 9, 1)
		assert.EqualError(t, err, "timeout")
	})
}

func TestSlotQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSlotReadStore(ctrl)
		want := builder.NewSlotBuilder().BuildView()
		store.EXPECT().FindByID(ctx, int64(1)).Return(want, nil)

		got, err := queries.NewSlotQueries(store).GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSlotReadStore(ctrl)
		store.EXPECT().FindByID(ctx, int64(1)).
			Return(nil, infra.WrapRepoErr("slot not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := queries.NewSlotQueries(store).GetByID(ctx, 1)
		assert.ErrorIs(t, err, queries.ErrSlotNotFound)
	})
}
