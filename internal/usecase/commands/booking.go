package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"bookit/internal/domain/booking"
	"bookit/internal/domain/promo"
	"bookit/internal/domain/slot"
	"bookit/internal/infra"
	"bookit/internal/pkg/clock"
	"bookit/internal/pkg/errs"
	"bookit/internal/usecase/queries"
	"bookit/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type CreateBookingInput struct {
	ExperienceID int64
	SlotID       int64
	UserName     string
	UserEmail    string
	UserPhone    string
	Participants int
	PromoCode    *string
}

// CreateBookingResult always carries the committed id; Booking is nil when the
// read-after-write lookup failed.
type CreateBookingResult struct {
	BookingID int64
	Booking   *queries.BookingView
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, id int64) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	contact, err := booking.NewContact(in.UserName, in.UserEmail, in.UserPhone)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if in.Participants < 1 {
		return nil, errs.Mark(booking.ErrInvalidParticipants, ErrDomainValidation)
	}
	promoCode := normalizePromoCode(in.PromoCode)

	if err = uc.precheckAvailability(ctx, in.SlotID, in.Participants); err != nil {
		return nil, err
	}

	quoted := decimal.Zero
	if promoCode != nil {
		quoted, err = uc.quotePromo(ctx, in.ExperienceID, in.Participants, *promoCode)
		if err != nil {
			return nil, err
		}
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, terr := uc.reserve(ctx, tx, in, contact, promoCode, quoted)
		if terr != nil {
			return terr
		}
		created = b
		return nil
	})
	if err != nil {
		slog.WarnContext(ctx, "booking creation rolled back",
			"slot_id", in.SlotID,
			"participants", in.Participants,
			"error", err.Error())
		return nil, err
	}

	slog.InfoContext(ctx, "booking created",
		"booking_id", created.ID(),
		"slot_id", created.SlotID(),
		"participants", created.Participants(),
		"total_price", created.TotalPrice().StringFixed(2))

	result := &CreateBookingResult{BookingID: created.ID()}
	view, err := uc.bookingQueries.GetByID(ctx, created.ID())
	if err != nil {
		slog.ErrorContext(ctx, "failed to read committed booking", "booking_id", created.ID(), "error", err.Error())
		return result, nil
	}
	result.Booking = view
	return result, nil
}

// CancelBooking returns the joined view after commit. When that read fails the
// cancellation still stands, so the locked row is returned without the joined fields.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, id int64) (*queries.BookingView, error) {
	var cancelled *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := uc.release(ctx, tx, id)
		if err != nil {
			return err
		}
		cancelled = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking cancelled", "booking_id", id)
	view, err := uc.bookingQueries.GetByID(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read cancelled booking", "booking_id", id, "error", err.Error())
		return uc.viewFromBooking(cancelled), nil
	}
	return view, nil
}

func (uc *bookingUseCaseImpl) viewFromBooking(b *booking.Booking) *queries.BookingView {
	contact := b.Contact()
	return &queries.BookingView{
		ID:             b.ID(),
		ExperienceID:   b.ExperienceID(),
		SlotID:         b.SlotID(),
		UserName:       contact.Name(),
		UserEmail:      contact.Email(),
		UserPhone:      contact.Phone(),
		Participants:   int32(b.Participants()),
		TotalPrice:     b.TotalPrice(),
		PromoCode:      b.PromoCode(),
		DiscountAmount: b.DiscountAmount(),
		Status:         b.Status().String(),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      uc.clock.Now().UTC(),
	}
}

// precheckAvailability fails fast without locks; a missing slot counts as unavailable.
func (uc *bookingUseCaseImpl) precheckAvailability(ctx context.Context, slotID int64, participants int) error {
	snap, err := uc.uow.CommandReads().SlotByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSlotUnavailable
		}
		return err
	}
	if snap.Capacity-snap.BookedCount < participants {
		return ErrSlotUnavailable
	}
	return nil
}

// quotePromo evaluates the code against the experience price before any lock is taken.
func (uc *bookingUseCaseImpl) quotePromo(ctx context.Context, experienceID int64, participants int, code string) (decimal.Decimal, error) {
	reads := uc.uow.CommandReads()

	exp, err := reads.ExperienceByID(ctx, experienceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return decimal.Zero, ErrExperienceNotFound
		}
		return decimal.Zero, err
	}

	p, err := uc.promoFromSnapshot(reads.PromoByCode(ctx, code))
	if err != nil {
		return decimal.Zero, err
	}

	res := promo.Evaluate(p, booking.BasePrice(exp.Price, participants), uc.clock.Now())
	if !res.Valid {
		return decimal.Zero, &InvalidPromoError{Code: code, Message: res.Message}
	}
	return res.DiscountAmount, nil
}

// reserve runs inside the transaction. Lock order is slot then promo.
func (uc *bookingUseCaseImpl) reserve(
	ctx context.Context,
	tx shared.Tx,
	in CreateBookingInput,
	contact booking.Contact,
	promoCode *string,
	quoted decimal.Decimal,
) (*booking.Booking, error) {
	locked, err := tx.Slots().LockForBooking(ctx, tx.DB(), in.SlotID, in.ExperienceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotInExperience
		}
		return nil, err
	}

	remaining := locked.Slot.AvailableSpots()
	if err = locked.Slot.Reserve(in.Participants); err != nil {
		return nil, err
	}

	discount := decimal.Zero
	if promoCode != nil {
		discount, err = uc.lockAndReevaluatePromo(ctx, tx, *promoCode, booking.BasePrice(locked.UnitPrice, in.Participants), quoted)
		if err != nil {
			return nil, err
		}
	}

	b, err := booking.NewBooking(in.ExperienceID, in.SlotID, contact, in.Participants, locked.UnitPrice, promoCode, discount)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, createdAt, err := tx.Bookings().Create(ctx, tx.DB(), b)
	if err != nil {
		return nil, err
	}
	b.AssignID(id, createdAt)

	applied, err := tx.Slots().IncrementBooked(ctx, tx.DB(), in.SlotID, in.Participants)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, &slot.CapacityError{Remaining: remaining}
	}

	if b.HasPromo() {
		applied, err = tx.Promos().IncrementUsage(ctx, tx.DB(), *b.PromoCode())
		if err != nil {
			return nil, err
		}
		if !applied {
			return nil, &InvalidPromoError{Code: *b.PromoCode(), Message: promo.MsgUsageExceeded}
		}
	}

	if err = uc.appendEvent(ctx, tx, b, shared.EventBookingCreated); err != nil {
		return nil, err
	}
	return b, nil
}

// lockAndReevaluatePromo rejects the booking when the discount no longer matches the quote.
func (uc *bookingUseCaseImpl) lockAndReevaluatePromo(
	ctx context.Context,
	tx shared.Tx,
	code string,
	base decimal.Decimal,
	quoted decimal.Decimal,
) (decimal.Decimal, error) {
	p, err := tx.Promos().GetForUpdate(ctx, tx.DB(), code)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return decimal.Zero, err
		}
		p = nil
	}

	res := promo.Evaluate(p, base, uc.clock.Now())
	if !res.Valid {
		return decimal.Zero, &InvalidPromoError{Code: code, Message: res.Message}
	}
	if !res.DiscountAmount.Equal(quoted) {
		return decimal.Zero, errs.Wrapf(ErrPromoChanged, "quoted %s, now %s",
			quoted.StringFixed(2), res.DiscountAmount.StringFixed(2))
	}
	return res.DiscountAmount, nil
}

// release runs inside the transaction. Lock order is booking, slot, promo.
func (uc *bookingUseCaseImpl) release(ctx context.Context, tx shared.Tx, id int64) (*booking.Booking, error) {
	b, err := tx.Bookings().GetForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if err = b.Cancel(); err != nil {
		return nil, errs.Mark(err, ErrAlreadyCancelled)
	}

	s, err := tx.Slots().LockByID(ctx, tx.DB(), b.SlotID())
	if err != nil {
		return nil, errs.Mark(err, ErrInvariantViolation)
	}
	if err = s.Release(b.Participants()); err != nil {
		return nil, errs.Mark(err, ErrInvariantViolation)
	}

	if err = tx.Bookings().UpdateStatus(ctx, tx.DB(), b.ID(), b.Status()); err != nil {
		return nil, err
	}

	applied, err := tx.Slots().DecrementBooked(ctx, tx.DB(), b.SlotID(), b.Participants())
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, errs.Wrapf(ErrInvariantViolation, "slot %d booked count below %d", b.SlotID(), b.Participants())
	}

	if b.HasPromo() {
		if err = tx.Promos().DecrementUsage(ctx, tx.DB(), *b.PromoCode()); err != nil {
			return nil, err
		}
	}

	if err = uc.appendEvent(ctx, tx, b, shared.EventBookingCancelled); err != nil {
		return nil, err
	}
	return b, nil
}

type bookingEventPayload struct {
	BookingID      int64     `json:"booking_id"`
	ExperienceID   int64     `json:"experience_id"`
	SlotID         int64     `json:"slot_id"`
	UserEmail      string    `json:"user_email"`
	Participants   int       `json:"participants"`
	TotalPrice     string    `json:"total_price"`
	DiscountAmount string    `json:"discount_amount"`
	PromoCode      *string   `json:"promo_code,omitempty"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func (uc *bookingUseCaseImpl) appendEvent(ctx context.Context, tx shared.Tx, b *booking.Booking, kind string) error {
	payload, err := json.Marshal(bookingEventPayload{
		BookingID:      b.ID(),
		ExperienceID:   b.ExperienceID(),
		SlotID:         b.SlotID(),
		UserEmail:      b.Contact().Email(),
		Participants:   b.Participants(),
		TotalPrice:     b.TotalPrice().StringFixed(2),
		DiscountAmount: b.DiscountAmount().StringFixed(2),
		PromoCode:      b.PromoCode(),
		Status:         b.Status().String(),
		OccurredAt:     uc.clock.Now().UTC(),
	})
	if err != nil {
		return errs.Mark(err, ErrEventEncodingFailure)
	}
	return tx.Events().Append(ctx, tx.DB(), b.ID(), kind, payload)
}

func (uc *bookingUseCaseImpl) promoFromSnapshot(snap *shared.PromoSnapshot, err error) (*promo.Promo, error) {
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return promo.Reconstruct(
		snap.Code,
		snap.DiscountType,
		snap.DiscountValue,
		snap.MinAmount,
		snap.MaxUses,
		snap.UsedCount,
		snap.ValidUntil,
		snap.IsActive,
	)
}

func normalizePromoCode(code *string) *string {
	if code == nil {
		return nil
	}
	c := promo.NormalizeCode(*code)
	if c == "" {
		return nil
	}
	return &c
}
