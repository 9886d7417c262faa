//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookit/internal/domain/booking"
	"bookit/internal/infra"
	"bookit/internal/infra/repository"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/pkg/pgconv"
	"bookit/tests/common/builder"
	repositorymock "bookit/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking inserted with its computed totals",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.CreateBookingRow, error) {
						total, err := pgconv.DecimalFromNumeric(arg.TotalPrice)
						require.NoError(t, err)
						assert.True(t, decimal.RequireFromString("81.00").Equal(total), "total %s", total)
						assert.Equal(t, "SAVE10", arg.PromoCode.String)
						assert.Equal(t, booking.StatusConfirmed.String(), arg.Status)
						return sqlc.CreateBookingRow{ID: 42, CreatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true}}, nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.CreateBookingRow{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: unknown experience reference",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.CreateBookingRow{}, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b, err := builder.NewBookingBuilder().WithPromo("SAVE10", "9.00").BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			id, at, actualError := repo.Create(ctx, mockDB, b)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Zero(t, id)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, int64(42), id)
			assert.Equal(t, createdAt, at)
		})
	}
}

// =============================================================================
// GetForUpdate Tests
// =============================================================================

func TestBookingRepository_GetForUpdate(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: locked row converted to domain",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				row := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = 7 }).BuildInfra()
				mock.EXPECT().GetBookingForUpdate(ctx, tx, int64(7)).Return(row, nil)
			},
		},
		{
			name: "error: booking does not exist",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetBookingForUpdate(ctx, tx, int64(7)).Return(sqlc.Bookings{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: stored status is unknown",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				row := builder.NewBookingBuilder().BuildInfra()
				row.Status = "archived"
				mock.EXPECT().GetBookingForUpdate(ctx, tx, int64(7)).Return(row, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: lock timeout",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				busy := &pgconn.PgError{Code: "55P03", Message: "canceling statement due to lock timeout"}
				mock.EXPECT().GetBookingForUpdate(ctx, tx, int64(7)).Return(sqlc.Bookings{}, busy)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			b, err := repo.GetForUpdate(ctx, mockDB, 7)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), b.ID())
			assert.Equal(t, booking.StatusConfirmed, b.Status())
			assert.Equal(t, 2, b.Participants())
			assert.True(t, decimal.RequireFromString("90").Equal(b.TotalPrice()))
		})
	}
}

// =============================================================================
// UpdateStatus Tests
// =============================================================================

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: status updated", affected: 1},
		{name: "error: no row updated", affected: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("connection reset"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			mockQueries.EXPECT().
				UpdateBookingStatus(ctx, mockDB, sqlc.UpdateBookingStatusParams{Status: "cancelled", ID: 3}).
				Return(tc.affected, tc.queryErr)

			err := repo.UpdateStatus(ctx, mockDB, 3, booking.StatusCancelled)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
