package commands

import (
	"bookit/internal/pkg/errs"
)

var (
	ErrDomainValidation     = errs.New("domain validation error")
	ErrSlotUnavailable      = errs.New("not enough spots available for the selected slot")
	ErrSlotNotInExperience  = errs.New("Slot not found or does not belong to this experience")
	ErrExperienceNotFound   = errs.ErrExperienceNotFound
	ErrBookingNotFound      = errs.ErrBookingNotFound
	ErrAlreadyCancelled     = errs.New("booking is already cancelled")
	ErrPromoChanged         = errs.New("promo code discount changed during booking")
	ErrInvariantViolation   = errs.New("booking invariant violated")
	ErrEventEncodingFailure = errs.New("failed to encode booking event")
)

// InvalidPromoError carries the evaluator message for a code that cannot be applied.
type InvalidPromoError struct {
	Code    string
	Message string
}

func (e *InvalidPromoError) Error() string {
	return e.Message
}
