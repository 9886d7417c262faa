//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"bookit/internal/infra"
	"bookit/internal/infra/readstore"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/queries"
	"bookit/tests/common/builder"
	readstoremock "bookit/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExperienceReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: nullable columns mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockExperienceReadQueries(ctrl)
		store := readstore.NewExperienceReadStore(mockQueries, nil)

		e := builder.NewExperienceBuilder().With(func(e *builder.ExperienceBuilder) {
			e.Rating = nil
			e.ImageURL = nil
		})
		mockQueries.EXPECT().GetExperienceByID(ctx, gomock.Any(), int64(1)).Return(e.BuildInfra(), nil)

		got, err := store.FindByID(ctx, 1)
		require.NoError(t, err)
		if diff := cmp.Diff(e.BuildView(), got); diff != "" {
			t.Errorf("FindByID mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: experience not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockExperienceReadQueries(ctrl)
		store := readstore.NewExperienceReadStore(mockQueries, nil)

		mockQueries.EXPECT().GetExperienceByID(ctx, gomock.Any(), int64(99)).Return(sqlc.Experiences{}, pgx.ErrNoRows)

		_, err := store.FindByID(ctx, 99)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: NaN price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockExperienceReadQueries(ctrl)
		store := readstore.NewExperienceReadStore(mockQueries, nil)

		row := builder.NewExperienceBuilder().BuildInfra()
		row.Price = pgtype.Numeric{NaN: true, Valid: true}
		mockQueries.EXPECT().GetExperienceByID(ctx, gomock.Any(), int64(1)).Return(row, nil)

		_, err := store.FindByID(ctx, 1)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestExperienceReadStore_List(t *testing.T) {
	ctx := context.Background()
	category := "Adventure"
	minPrice := decimal.RequireFromString("10")
	maxPrice := decimal.RequireFromString("100")

	testCases := []struct {
		name     string
		filter   queries.ExperienceFilter
		expected sqlc.ListExperiencesParams
	}{
		{
			name:   "defaults sort by rating descending",
			filter: queries.ExperienceFilter{}.Normalize(),
			expected: sqlc.ListExperiencesParams{
				SortBy:   queries.SortByRating,
				SortDesc: true,
				Lim:      queries.DefaultListLimit,
			},
		},
		{
			name: "filters and ascending price sort",
			filter: queries.ExperienceFilter{
				Category:  &category,
				MinPrice:  &minPrice,
				MaxPrice:  &maxPrice,
				SortBy:    queries.SortByPrice,
				SortOrder: "ASC",
				Limit:     10,
				Offset:    20,
			}.Normalize(),
			expected: sqlc.ListExperiencesParams{
				Category: pgtype.Text{String: "Adventure", Valid: true},
				MinPrice: pgconv.NumericFromDecimal(minPrice),
				MaxPrice: pgconv.NumericFromDecimal(maxPrice),
				SortBy:   queries.SortByPrice,
				SortDesc: false,
				Lim:      10,
				Off:      20,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockExperienceReadQueries(ctrl)
			store := readstore.NewExperienceReadStore(mockQueries, nil)

			mockQueries.EXPECT().ListExperiences(ctx, gomock.Any(), tc.expected).
				Return([]sqlc.Experiences{builder.NewExperienceBuilder().BuildInfra()}, nil)

			got, err := store.List(ctx, tc.filter)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "Kayak Mangrove Tour", got[0].Title)
		})
	}
}

func TestExperienceReadStore_SearchAndCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("search passes term and limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockExperienceReadQueries(ctrl)
		store := readstore.NewExperienceReadStore(mockQueries, nil)

		mockQueries.EXPECT().SearchExperiences(ctx, gomock.Any(), sqlc.SearchExperiencesParams{Term: "kayak", Lim: 20}).Return(nil, nil)

		got, err := store.Search(ctx, "kayak", 20)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("no categories yields empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockExperienceReadQueries(ctrl)
		store := readstore.NewExperienceReadStore(mockQueries, nil)

		mockQueries.EXPECT().ListCategories(ctx, gomock.Any()).Return(nil, nil)

		got, err := store.Categories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{}, got)
	})

	t.Run("categories database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockExperienceReadQueries(ctrl)
		store := readstore.NewExperienceReadStore(mockQueries, nil)

		mockQueries.EXPECT().ListCategories(ctx, gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.Categories(ctx)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
