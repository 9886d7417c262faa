//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"bookit/internal/domain/promo"
	"bookit/internal/infra"
	"bookit/internal/infra/repository"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/tests/common/builder"
	repositorymock "bookit/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPromoRepository_GetForUpdate(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockPromoWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: code normalized before lookup",
			setupMock: func(mock *repositorymock.MockPromoWriteQueries, tx sqlc.DBTX) {
				maxUses := 100
				row := builder.NewPromoBuilder().With(func(p *builder.PromoBuilder) {
					p.MaxUses = &maxUses
					p.UsedCount = 12
				}).BuildInfra()
				mock.EXPECT().GetPromoCodeForUpdate(ctx, tx, "SAVE10").Return(row, nil)
			},
		},
		{
			name: "error: unknown code",
			setupMock: func(mock *repositorymock.MockPromoWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetPromoCodeForUpdate(ctx, tx, "SAVE10").Return(sqlc.PromoCodes{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: stored discount type is unknown",
			setupMock: func(mock *repositorymock.MockPromoWriteQueries, tx sqlc.DBTX) {
				row := builder.NewPromoBuilder().BuildInfra()
				row.DiscountType = "bogo"
				mock.EXPECT().GetPromoCodeForUpdate(ctx, tx, "SAVE10").Return(row, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPromoWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPromoRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			p, err := repo.GetForUpdate(ctx, mockDB, "  save10 ")

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "SAVE10", p.Code())
			assert.Equal(t, promo.DiscountPercentage, p.DiscountType())
			assert.Equal(t, 12, p.UsedCount())
			require.NotNil(t, p.MaxUses())
			assert.Equal(t, 100, *p.MaxUses())
		})
	}
}

func TestPromoRepository_Usage(t *testing.T) {
	ctx := context.Background()

	t.Run("increment applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPromoWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPromoRepository(mockQueries, mockDB)

		mockQueries.EXPECT().IncrementPromoUsage(ctx, mockDB, "FLAT5").Return(int64(1), nil)

		applied, err := repo.IncrementUsage(ctx, mockDB, "flat5")
		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("increment blocked by usage cap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPromoWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPromoRepository(mockQueries, mockDB)

		mockQueries.EXPECT().IncrementPromoUsage(ctx, mockDB, "FLAT5").Return(int64(0), nil)

		applied, err := repo.IncrementUsage(ctx, mockDB, "FLAT5")
		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("decrement of a deleted code is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPromoWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPromoRepository(mockQueries, mockDB)

		mockQueries.EXPECT().DecrementPromoUsage(ctx, mockDB, "FLAT5").Return(int64(0), nil)

		assert.NoError(t, repo.DecrementUsage(ctx, mockDB, "FLAT5"))
	})

	t.Run("decrement database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPromoWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPromoRepository(mockQueries, mockDB)

		mockQueries.EXPECT().DecrementPromoUsage(ctx, mockDB, "FLAT5").Return(int64(0), errors.New("boom"))

		err := repo.DecrementUsage(ctx, mockDB, "FLAT5")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
