package catalog

import (
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the flat rate applied when a vendor opts into tax: 5%, split 2.5% + 2.5%.
var DefaultTaxRate = decimal.RequireFromString("0.05")

// FeeSchedule is the vendor-level input to the pricing engine.
type FeeSchedule struct {
	DeliveryFee kernel.Money
	TaxEnabled  bool
	TaxRate     decimal.Decimal
}

// NewFeeSchedule validates a rate in [0, 1]. A zero rate with tax enabled falls back to DefaultTaxRate.
func NewFeeSchedule(deliveryFee kernel.Money, taxEnabled bool, taxRate decimal.Decimal) (FeeSchedule, error) {
	if taxRate.IsZero() {
		taxRate = DefaultTaxRate
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
		return FeeSchedule{}, errs.NewValueIsOutOfRangeError("tax rate", taxRate.String(), "0", "1")
	}
	return FeeSchedule{DeliveryFee: deliveryFee, TaxEnabled: taxEnabled, TaxRate: taxRate}, nil
}

func (f FeeSchedule) String() string {
	return fmt.Sprintf("fee=%s tax=%t rate=%s", f.DeliveryFee, f.TaxEnabled, f.TaxRate)
}
