package response

import (
	"time"

	"bookit/internal/usecase/queries"
)

type ExperienceResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Price        Money     `json:"price"`
	ImageURL     *string   `json:"image_url"`
	Duration     int32     `json:"duration"`
	Rating       *Money    `json:"rating"`
	ReviewsCount int32     `json:"reviews_count"`
	Category     *string   `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ExperienceDetailResponse struct {
	ExperienceResponse
	AvailableSlots []*SlotResponse `json:"available_slots"`
}

type SlotResponse struct {
	ID             int64  `json:"id"`
	ExperienceID   int64  `json:"experience_id"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Capacity       int32  `json:"capacity"`
	BookedCount    int32  `json:"booked_count"`
	AvailableSpots int32  `json:"available_spots"`
	IsAvailable    bool   `json:"is_available"`
}

type SlotAvailabilityResponse struct {
	SlotID         int64 `json:"slot_id"`
	Participants   int   `json:"participants"`
	Available      bool  `json:"available"`
	AvailableSpots int32 `json:"available_spots"`
}

func FromExperienceView(v *queries.ExperienceView) (*ExperienceResponse, error) {
	res := &ExperienceResponse{}
	if err := copyView(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromExperienceViews(vs []*queries.ExperienceView) ([]*ExperienceResponse, error) {
	res := make([]*ExperienceResponse, 0, len(vs))
	for _, v := range vs {
		r, err := FromExperienceView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

func FromExperienceDetailView(v *queries.ExperienceDetailView) (*ExperienceDetailResponse, error) {
	exp, err := FromExperienceView(&v.ExperienceView)
	if err != nil {
		return nil, err
	}
	return &ExperienceDetailResponse{
		ExperienceResponse: *exp,
		AvailableSlots:     FromSlotViews(v.AvailableSlots),
	}, nil
}

func FromSlotViews(vs []*queries.SlotView) []*SlotResponse {
	res := make([]*SlotResponse, len(vs))
	for i, v := range vs {
		res[i] = &SlotResponse{
			ID:             v.ID,
			ExperienceID:   v.ExperienceID,
			Date:           v.Date,
			StartTime:      v.StartTime,
			EndTime:        v.EndTime,
			Capacity:       v.Capacity,
			BookedCount:    v.BookedCount,
			AvailableSpots: v.AvailableSpots,
			IsAvailable:    v.IsAvailable,
		}
	}
	return res
}

func FromSlotAvailability(a *queries.SlotAvailability) *SlotAvailabilityResponse {
	return &SlotAvailabilityResponse{
		SlotID:         a.SlotID,
		Participants:   a.Participants,
		Available:      a.Available,
		AvailableSpots: a.AvailableSpots,
	}
}
