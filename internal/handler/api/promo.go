package api

import (
	"net/http"

	reqdto "bookit/internal/handler/dto/request"
	resdto "bookit/internal/handler/dto/response"
	"bookit/internal/handler/httperr"
	"bookit/internal/pkg/errs"
	"bookit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromoHandler struct {
	q queries.PromoQueries
}

func NewPromoHandler(q queries.PromoQueries) *PromoHandler {
	return &PromoHandler{q: q}
}

// @Summary Validate promo code
// @Description Evaluate a code against a purchase amount
// @Tags promo
// @Accept json
// @Produce json
// @Param request body reqdto.ValidatePromoRequest true "Code and amount"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /api/promo/validate [post]
func (h *PromoHandler) Validate(c *gin.Context) {
	var req reqdto.ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.PromoBindError(err), "")
		return
	}

	res, err := h.q.Validate(c.Request.Context(), req.Code, req.AmountOrZero())
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrPromoCodeRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.MsgPromoCodeRequired, "")
		case errs.Is(err, queries.ErrInvalidAmount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.MsgAmountRequired, "")
		default:
			_ = c.Error(err)
		}
		return
	}

	data := resdto.FromPromoValidation(res)
	if !res.Valid {
		httperr.Abort(c, errs.New(res.Message),
			httperr.New(http.StatusBadRequest, "Invalid promo code", res.Message).WithData(data))
		return
	}
	c.JSON(http.StatusOK, resdto.WithMessage(data, res.Message))
}

// @Summary List active promo codes
// @Tags promo
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /api/promo/active [get]
func (h *PromoHandler) Active(c *gin.Context) {
	views, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	data, err := resdto.FromActivePromos(views)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resdto.WithCount(data, len(data)))
}
