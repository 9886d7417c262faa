package api

import (
	"net/http"

	"bookit/internal/domain/slot"
	reqdto "bookit/internal/handler/dto/request"
	resdto "bookit/internal/handler/dto/response"
	"bookit/internal/handler/httperr"
	"bookit/internal/pkg/errs"
	"bookit/internal/usecase/commands"
	"bookit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds      commands.BookingCommands
	q         queries.BookingQueries
	validator *reqdto.Validator
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, validator *reqdto.Validator) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, validator: validator}
}

// @Summary Create booking
// @Description Reserve spots on a slot, optionally applying a promo code
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, err, httperr.New(http.StatusBadRequest, "Validation failed", "").
			WithDetails([]string{"Request body must be a JSON object with the expected field types"}))
		return
	}
	req.Normalize()
	if violations := req.Validate(h.validator); len(violations) > 0 {
		httperr.Abort(c, errs.New("invalid booking request"),
			httperr.New(http.StatusBadRequest, "Validation failed", "").WithDetails(violations))
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), req.ToInput())
	if err != nil {
		abortBookingFailure(c, err)
		return
	}

	if result.Booking == nil {
		c.JSON(http.StatusCreated, resdto.WithMessage(resdto.BookingCreatedResponse{ID: result.BookingID}, "Booking created successfully"))
		return
	}
	data, err := resdto.FromBookingView(result.Booking)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resdto.WithMessage(data, "Booking created successfully"))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := reqdto.ParseID(c.Param("id"))
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid booking ID", "")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", "")
			return
		}
		_ = c.Error(err)
		return
	}

	data, err := resdto.FromBookingView(view)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(data))
}

// @Summary List bookings by email
// @Tags bookings
// @Produce json
// @Param email path string true "Customer email"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /api/bookings/user/{email} [get]
func (h *BookingHandler) ListByEmail(c *gin.Context) {
	views, err := h.q.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errs.Is(err, queries.ErrInvalidEmail) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email format", "")
			return
		}
		_ = c.Error(err)
		return
	}

	data, err := resdto.FromBookingViews(views)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resdto.WithCount(data, len(data)))
}

// @Summary Cancel booking
// @Description Cancelling twice is an error, not a no-op
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := reqdto.ParseID(c.Param("id"))
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid booking ID", "")
		return
	}

	view, err := h.cmds.CancelBooking(c.Request.Context(), id)
	if err != nil {
		abortBookingFailure(c, err)
		return
	}

	data, err := resdto.FromBookingView(view)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resdto.WithMessage(data, "Booking cancelled successfully"))
}

// abortBookingFailure maps booking command errors; unknown errors fall through to ErrorHandler.
func abortBookingFailure(c *gin.Context, err error) {
	var capErr *slot.CapacityError
	var promoErr *commands.InvalidPromoError

	switch {
	case errs.Is(err, commands.ErrDomainValidation):
		httperr.Abort(c, err, httperr.New(http.StatusBadRequest, "Validation failed", "").
			WithDetails([]string{err.Error()}))
	case errs.Is(err, commands.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Slot not available", "Not enough spots available for the selected slot")
	case errs.As(err, &capErr):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking failed", capErr.Error())
	case errs.As(err, &promoErr):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid promo code", promoErr.Message)
	case errs.Is(err, commands.ErrPromoChanged):
		httperr.AbortWithError(c, http.StatusConflict, err,
			"Promo code changed", "The promo code discount changed while booking, please review and retry")
	case errs.Is(err, commands.ErrExperienceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Experience not found", "")
	case errs.Is(err, commands.ErrSlotNotInExperience):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", commands.ErrSlotNotInExperience.Error())
	case errs.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", "")
	case errs.Is(err, commands.ErrAlreadyCancelled):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking already cancelled", "Booking is already cancelled")
	default:
		_ = c.Error(err)
	}
}
