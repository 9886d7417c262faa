//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"bookit/internal/infra"
	"bookit/internal/infra/readstore"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/tests/common/builder"
	readstoremock "bookit/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder().WithPromo("SAVE10", "9.00")

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockBookingReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking joined with experience and slot",
			setupMock: func(mock *readstoremock.MockBookingReadQueries) {
				mock.EXPECT().GetBookingViewByID(ctx, gomock.Any(), int64(1)).Return(b.BuildViewRow(), nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *readstoremock.MockBookingReadQueries) {
				mock.EXPECT().GetBookingViewByID(ctx, gomock.Any(), int64(1)).Return(sqlc.GetBookingViewByIDRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockBookingReadQueries) {
				mock.EXPECT().GetBookingViewByID(ctx, gomock.Any(), int64(1)).Return(sqlc.GetBookingViewByIDRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
			store := readstore.NewBookingReadStore(mockQueries, nil)
			tc.setupMock(mockQueries)

			got, err := store.FindByID(ctx, 1)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(b.BuildView(), got); diff != "" {
				t.Errorf("FindByID mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// =============================================================================
// FindByEmail Tests
// =============================================================================

func TestBookingReadStore_FindByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows returned in query order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, nil)

		newer := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = 2 })
		older := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = 1 })
		mockQueries.EXPECT().ListBookingViewsByEmail(ctx, gomock.Any(), "jane@example.com").
			Return([]sqlc.ListBookingViewsByEmailRow{newer.BuildListViewRow(), older.BuildListViewRow()}, nil)

		got, err := store.FindByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(2), got[0].ID)
		assert.Equal(t, int64(1), got[1].ID)
		assert.Equal(t, "2026-05-10", got[0].SlotDate)
		assert.Equal(t, "09:00:00", got[0].SlotStartTime)
	})

	t.Run("success: no bookings yields empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, nil)

		mockQueries.EXPECT().ListBookingViewsByEmail(ctx, gomock.Any(), "nobody@example.com").Return(nil, nil)

		got, err := store.FindByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, nil)

		mockQueries.EXPECT().ListBookingViewsByEmail(ctx, gomock.Any(), "jane@example.com").Return(nil, errDBConnectionLost)

		_, err := store.FindByEmail(ctx, "jane@example.com")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
