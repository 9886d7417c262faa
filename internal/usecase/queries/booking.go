package queries

import (
	"context"

	"bookit/internal/domain/booking"
	"bookit/internal/infra"
	"bookit/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.ErrBookingNotFound
	ErrInvalidEmail    = errs.New("invalid email format")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	FindByEmail(ctx context.Context, email string) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id int64) (*BookingView, error)
	ListByEmail(ctx context.Context, email string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int64) (*BookingView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (q *bookingQueriesImpl) ListByEmail(ctx context.Context, email string) ([]*BookingView, error) {
	email = booking.NormalizeEmail(email)
	if !booking.EmailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	return q.store.FindByEmail(ctx, email)
}
