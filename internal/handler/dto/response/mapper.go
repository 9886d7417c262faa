package response

import (
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: Money{},
			Fn: func(src any) (any, error) {
				return NewMoney(src.(decimal.Decimal)), nil
			},
		},
		{
			SrcType: (*decimal.Decimal)(nil),
			DstType: (*Money)(nil),
			Fn: func(src any) (any, error) {
				return MoneyPtr(src.(*decimal.Decimal)), nil
			},
		},
	},
}

func copyView(dst, src any) error {
	return copier.CopyWithOption(dst, src, copyOption)
}
