package errs

// Lookup sentinels shared by the query and command sides
var (
	ErrExperienceNotFound = New("experience not found")
	ErrSlotNotFound       = New("slot not found")
	ErrBookingNotFound    = New("booking not found")
	ErrPromoNotFound      = New("promo code not found")
)
