//go:build unit

package queries_test

import (
	"context"
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

func TestBookingQueries_ListByEmail(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		email     string
		setupMock func(store *queriesmock.MockBookingReadStore)
		wantErr   error
		wantLen   int
	}{
		{
			name:  "email is normalized before lookup",
			email: "  Jane@Example.COM ",
			setupMock: func(store *queriesmock.MockBookingReadStore) {
				store.EXPECT().FindByEmail(ctx, "jane@example.com").
					Return([]*queries.BookingView{builder.NewBookingBuilder().BuildView()}, nil)
			},
			wantLen: 1,
		},
		{
			name:      "malformed email",
			email:     "jane.example.com",
			setupMock: func(store *queriesmock.MockBookingReadStore) {},
			wantErr:   queries.ErrInvalidEmail,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			tc.setupMock(store)

			got, err := queries.NewBookingQueries(store).ListByEmail(ctx, tc.email)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tc.wantLen)
		})
	}
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	store.EXPECT().FindByID(ctx, int64(404)).
		Return(nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound))

	_, err := queries.NewBookingQueries(store).GetByID(ctx, 404)
	assert.ErrorIs(t, err, queries.ErrBookingNotFound)
}
