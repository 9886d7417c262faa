package response

import (
	"time"

	"bookit/internal/usecase/queries"
)

type BookingResponse struct {
	ID                 int64     `json:"id"`
	ExperienceID       int64     `json:"experience_id"`
	SlotID             int64     `json:"slot_id"`
	UserName           string    `json:"user_name"`
	UserEmail          string    `json:"user_email"`
	UserPhone          string    `json:"user_phone"`
	Participants       int32     `json:"participants"`
	TotalPrice         Money     `json:"total_price"`
	PromoCode          *string   `json:"promo_code"`
	DiscountAmount     Money     `json:"discount_amount"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	ExperienceTitle    string    `json:"experience_title"`
	ExperienceLocation string    `json:"experience_location"`
	SlotDate           string    `json:"slot_date"`
	SlotStartTime      string    `json:"slot_start_time"`
	SlotEndTime        string    `json:"slot_end_time"`
}

// BookingCreatedResponse is returned when the booking committed but could not be read back.
type BookingCreatedResponse struct {
	ID int64 `json:"id"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	res := &BookingResponse{}
	if err := copyView(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromBookingViews(vs []*queries.BookingView) ([]*BookingResponse, error) {
	res := make([]*BookingResponse, 0, len(vs))
	for _, v := range vs {
		r, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}
