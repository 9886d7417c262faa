package slot

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCapacity       = errors.New("slot capacity cannot be negative")
	ErrBookedCountOutOfRange = errors.New("slot booked count out of range")
	ErrInvalidParticipants   = errors.New("participants must be at least 1")
	ErrReleaseExceedsBooked  = errors.New("cannot release more participants than are booked")
)

// CapacityError reports the spots left at the moment the check ran.
type CapacityError struct {
	Remaining int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Not enough spots available. Only %d spot(s) remaining.", e.Remaining)
}

type Slot struct {
	id           int64
	experienceID int64
	capacity     int
	bookedCount  int
}

func Reconstruct(id, experienceID int64, capacity, bookedCount int) (*Slot, error) {
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if bookedCount < 0 || bookedCount > capacity {
		return nil, ErrBookedCountOutOfRange
	}
	return &Slot{
		id:           id,
		experienceID: experienceID,
		capacity:     capacity,
		bookedCount:  bookedCount,
	}, nil
}

func (s *Slot) AvailableSpots() int {
	return s.capacity - s.bookedCount
}

func (s *Slot) CanAccommodate(participants int) bool {
	return participants >= 1 && s.AvailableSpots() >= participants
}

func (s *Slot) Reserve(participants int) error {
	if participants < 1 {
		return ErrInvalidParticipants
	}
	if s.AvailableSpots() < participants {
		return &CapacityError{Remaining: s.AvailableSpots()}
	}
	s.bookedCount += participants
	return nil
}

func (s *Slot) Release(participants int) error {
	if participants < 1 {
		return ErrInvalidParticipants
	}
	if participants > s.bookedCount {
		return ErrReleaseExceedsBooked
	}
	s.bookedCount -= participants
	return nil
}

func (s *Slot) ID() int64           { return s.id }
func (s *Slot) ExperienceID() int64 { return s.experienceID }
func (s *Slot) Capacity() int       { return s.capacity }
func (s *Slot) BookedCount() int    { return s.bookedCount }
