package queries

import (
	"context"
	"time"

	"bookit/internal/infra"
	"bookit/internal/pkg/errs"
)

var ErrSlotNotFound = errs.ErrSlotNotFound

type SlotReadStore interface {
	FindByID(ctx context.Context, id int64) (*SlotView, error)
	FindAvailableByExperience(ctx context.Context, experienceID int64) ([]*SlotView, error)
	FindUpcomingByExperience(ctx context.Context, experienceID int64, onDate *time.Time) ([]*SlotView, error)
	AvailableDates(ctx context.Context, experienceID int64) ([]string, error)
	AvailableSpots(ctx context.Context, id int64) (int32, error)
}

type SlotQueries interface {
	GetByID(ctx context.Context, id int64) (*SlotView, error)
	// CheckAvailability is an optimistic read; the booking transaction re-checks under lock.
	CheckAvailability(ctx context.Context, slotID int64, participants int) (bool, error)
	Availability(ctx context.Context, slotID int64, participants int) (*SlotAvailability, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id int64) (*SlotView, error) {
	s, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return s, nil
}

func (q *slotQueriesImpl) CheckAvailability(ctx context.Context, slotID int64, participants int) (bool, error) {
	a, err := q.Availability(ctx, slotID, participants)
	if err != nil {
		if errs.Is(err, ErrSlotNotFound) {
			return false, nil
		}
		return false, err
	}
	return a.Available, nil
}

func (q *slotQueriesImpl) Availability(ctx context.Context, slotID int64, participants int) (*SlotAvailability, error) {
	spots, err := q.store.AvailableSpots(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return &SlotAvailability{
		SlotID:         slotID,
		Participants:   participants,
		Available:      participants >= 1 && int(spots) >= participants,
		AvailableSpots: spots,
	}, nil
}
