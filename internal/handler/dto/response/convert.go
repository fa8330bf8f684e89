package response

import (
	"time"

	"hotel-management-api/internal/domain/pricing"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Money renders as a fixed two-decimal string and calendar dates as YYYY-MM-DD.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return pricing.FormatMoney(src.(decimal.Decimal)), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(dateLayout), nil
			},
		},
	},
}

func copyInto(dst, src any) error {
	return copier.CopyWithOption(dst, src, copyOption)
}

func moneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := pricing.FormatMoney(*d)
	return &s
}
