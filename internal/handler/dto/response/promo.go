package response

import (
	"time"

	"bookit/internal/usecase/queries"
)

type PromoValidationResponse struct {
	Valid          bool    `json:"valid"`
	Code           string  `json:"code"`
	DiscountAmount *Money  `json:"discount_amount,omitempty"`
	DiscountType   *string `json:"discount_type,omitempty"`
	DiscountValue  *Money  `json:"discount_value,omitempty"`
	FinalAmount    *Money  `json:"final_amount,omitempty"`
}

type ActivePromoResponse struct {
	Code          string     `json:"code"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue Money      `json:"discount_value"`
	MinAmount     Money      `json:"min_amount"`
	ValidUntil    *time.Time `json:"valid_until"`
}

// FromPromoValidation exposes the discount detail only for a usable code.
func FromPromoValidation(v *queries.PromoValidation) *PromoValidationResponse {
	res := &PromoValidationResponse{Valid: v.Valid, Code: v.Code}
	if !v.Valid {
		return res
	}
	amount := NewMoney(v.DiscountAmount)
	final := NewMoney(v.FinalAmount)
	res.DiscountAmount = &amount
	res.DiscountType = v.DiscountType
	res.DiscountValue = MoneyPtr(v.DiscountValue)
	res.FinalAmount = &final
	return res
}

func FromActivePromos(vs []*queries.ActivePromoView) ([]*ActivePromoResponse, error) {
	res := make([]*ActivePromoResponse, 0, len(vs))
	for _, v := range vs {
		r := &ActivePromoResponse{}
		if err := copyView(r, v); err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}
