package request

import (
	"encoding/json"

	"bookit/internal/pkg/errs"
	"bookit/internal/pkg/ptr"

	"github.com/shopspring/decimal"
)

const (
	MsgPromoCodeRequired = "Promo code is required"
	MsgAmountRequired    = "Valid amount is required"
)

// ValidatePromoRequest accepts amount as a JSON number or numeric string.
type ValidatePromoRequest struct {
	Code   string           `json:"code"`
	Amount *decimal.Decimal `json:"amount"`
}

func (r ValidatePromoRequest) AmountOrZero() decimal.Decimal {
	return ptr.Or(r.Amount, decimal.Zero)
}

// PromoBindError names the field a failed bind is about. A mistyped code is a
// missing code; anything else is blamed on the amount.
func PromoBindError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errs.As(err, &typeErr) && typeErr.Field == "code" {
		return MsgPromoCodeRequired
	}
	return MsgAmountRequired
}
