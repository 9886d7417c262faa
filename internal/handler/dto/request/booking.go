package request

import (
	"strings"

	"bookit/internal/domain/booking"
	"bookit/internal/domain/promo"
	"bookit/internal/usecase/commands"
)

type CreateBookingRequest struct {
	ExperienceID int64   `json:"experience_id" validate:"gt=0"`
	SlotID       int64   `json:"slot_id" validate:"gt=0"`
	UserName     string  `json:"user_name" validate:"min=2"`
	UserEmail    string  `json:"user_email" validate:"required,address"`
	UserPhone    string  `json:"user_phone" validate:"min=10"`
	Participants int     `json:"participants" validate:"gte=1"`
	PromoCode    *string `json:"promo_code,omitempty"`
}

var createBookingMessages = Messages{
	"experience_id": "Valid experience_id is required",
	"slot_id":       "Valid slot_id is required",
	"user_name":     "Name must be at least 2 characters",
	"user_email":    "Valid email is required",
	"user_phone":    "Valid phone number is required (min 10 digits)",
	"participants":  "At least 1 participant is required",
}

// Normalize trims the contact fields, lower-cases the email and upper-cases the promo code.
func (r *CreateBookingRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.UserEmail = booking.NormalizeEmail(r.UserEmail)
	r.UserPhone = strings.TrimSpace(r.UserPhone)
	if r.PromoCode != nil {
		code := promo.NormalizeCode(*r.PromoCode)
		if code == "" {
			r.PromoCode = nil
		} else {
			r.PromoCode = &code
		}
	}
}

func (r *CreateBookingRequest) Validate(v *Validator) []string {
	return v.Violations(r, createBookingMessages)
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ExperienceID: r.ExperienceID,
		SlotID:       r.SlotID,
		UserName:     r.UserName,
		UserEmail:    r.UserEmail,
		UserPhone:    r.UserPhone,
		Participants: r.Participants,
		PromoCode:    r.PromoCode,
	}
}
