//go:build unit

package repository_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"bookit/internal/infra"
	"bookit/internal/infra/repository"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/usecase/shared"
	repositorymock "bookit/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventRepository_Append(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewEventRepository(mockQueries, mockDB)

	payload := []byte(`{"booking_id":1}`)
	mockQueries.EXPECT().CreateBookingEvent(ctx, mockDB, sqlc.CreateBookingEventParams{
		BookingID: 1,
		Kind:      shared.EventBookingCreated,
		Payload:   payload,
	}).Return(nil)

	require.NoError(t, repo.Append(ctx, mockDB, 1, shared.EventBookingCreated, payload))
}

func TestEventRepository_ClaimQueued(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success: rows mapped to outbox events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewEventRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ClaimQueuedBookingEvents(ctx, mockDB, int32(10)).Return([]sqlc.BookingEvents{
			{
				ID:        3,
				BookingID: 1,
				Kind:      shared.EventBookingCancelled,
				Payload:   []byte(`{}`),
				Status:    "queued",
				Attempts:  2,
				CreatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true},
			},
		}, nil)

		got, err := repo.ClaimQueued(ctx, mockDB, 10)
		require.NoError(t, err)

		want := []shared.OutboxEvent{{
			ID:        3,
			BookingID: 1,
			Kind:      shared.EventBookingCancelled,
			Payload:   []byte(`{}`),
			Attempts:  2,
			CreatedAt: createdAt,
		}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ClaimQueued mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success: empty outbox", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewEventRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ClaimQueuedBookingEvents(ctx, mockDB, int32(10)).Return(nil, nil)

		got, err := repo.ClaimQueued(ctx, mockDB, 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewEventRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ClaimQueuedBookingEvents(ctx, mockDB, int32(10)).Return(nil, errors.New("boom"))

		_, err := repo.ClaimQueued(ctx, mockDB, 10)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestEventRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewEventRepository(mockQueries, mockDB)

	cause := strings.Repeat("x", 1500)
	mockQueries.EXPECT().MarkBookingEventFailed(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.MarkBookingEventFailedParams) error {
			assert.Len(t, arg.LastError.String, 1000)
			assert.True(t, arg.LastError.Valid)
			assert.Equal(t, int32(5), arg.MaxAttempts)
			assert.Equal(t, int64(8), arg.ID)
			return nil
		})

	require.NoError(t, repo.MarkFailed(ctx, mockDB, 8, cause, 5))
}

func TestEventRepository_MarkPublished(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewEventRepository(mockQueries, mockDB)

	mockQueries.EXPECT().MarkBookingEventPublished(ctx, mockDB, int64(8)).Return(errors.New("boom"))

	err := repo.MarkPublished(ctx, mockDB, 8)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
