//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"

	"bookit/internal/infra/cache"
	"bookit/internal/usecase/queries"
	"bookit/tests/common/builder"
	cachemock "bookit/tests/mock/cache"
	queriesmock "bookit/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExperienceStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		setupMock func(c *cachemock.MockCache, next *queriesmock.MockExperienceReadStore)
		wantErr   bool
	}{
		{
			name: "hit: store is not queried",
			setupMock: func(c *cachemock.MockCache, next *queriesmock.MockExperienceReadStore) {
				c.EXPECT().Get(ctx, "experiences:1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, dst any) (bool, error) {
						*dst.(*queries.ExperienceView) = *builder.NewExperienceBuilder().BuildView()
						return true, nil
					})
			},
		},
		{
			name: "miss: loads and populates",
			setupMock: func(c *cachemock.MockCache, next *queriesmock.MockExperienceReadStore) {
				v := builder.NewExperienceBuilder().BuildView()
				c.EXPECT().Get(ctx, "experiences:1", gomock.Any()).Return(false, nil)
				next.EXPECT().FindByID(ctx, int64(1)).Return(v, nil)
				c.EXPECT().Set(ctx, "experiences:1", v).Return(nil)
			},
		},
		{
			name: "cache outage falls through to the store",
			setupMock: func(c *cachemock.MockCache, next *queriesmock.MockExperienceReadStore) {
				v := builder.NewExperienceBuilder().BuildView()
				c.EXPECT().Get(ctx, "experiences:1", gomock.Any()).Return(false, errors.New("dial tcp: connection refused"))
				next.EXPECT().FindByID(ctx, int64(1)).Return(v, nil)
				c.EXPECT().Set(ctx, "experiences:1", v).Return(errors.New("dial tcp: connection refused"))
			},
		},
		{
			name: "store error is not cached",
			setupMock: func(c *cachemock.MockCache, next *queriesmock.MockExperienceReadStore) {
				c.EXPECT().Get(ctx, "experiences:1", gomock.Any()).Return(false, nil)
				next.EXPECT().FindByID(ctx, int64(1)).Return(nil, errors.New("boom"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c := cachemock.NewMockCache(ctrl)
			next := queriesmock.NewMockExperienceReadStore(ctrl)
			tc.setupMock(c, next)

			got, err := cache.NewExperienceStore(next, c).FindByID(ctx, 1)

			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Kayak Mangrove Tour", got.Title)
		})
	}
}

func TestExperienceStore_Categories(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	c := cachemock.NewMockCache(ctrl)
	next := queriesmock.NewMockExperienceReadStore(ctrl)

	c.EXPECT().Get(ctx, "experiences:categories", gomock.Any()).Return(false, nil)
	next.EXPECT().Categories(ctx).Return([]string{"Adventure", "Food & Drink"}, nil)
	c.EXPECT().Set(ctx, "experiences:categories", []string{"Adventure", "Food & Drink"}).Return(nil)

	got, err := cache.NewExperienceStore(next, c).Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Adventure", "Food & Drink"}, got)
}

func TestExperienceStore_ListBypassesCache(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	c := cachemock.NewMockCache(ctrl)
	next := queriesmock.NewMockExperienceReadStore(ctrl)

	filter := queries.ExperienceFilter{}.Normalize()
	next.EXPECT().List(ctx, filter).Return([]*queries.ExperienceView{}, nil)

	_, err := cache.NewExperienceStore(next, c).List(ctx, filter)
	require.NoError(t, err)
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewNoopCache()

	require.NoError(t, c.Set(ctx, "k", "v"))
	var dst string
	hit, err := c.Get(ctx, "k", &dst)
	require.NoError(t, err)
	assert.False(t, hit)
}
