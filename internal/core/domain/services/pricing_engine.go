package services

import (
	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PricingEngine computes order prices and vendor commission. It holds no state.
//
// Business rules:
//   - subtotal = Σ unitPrice × quantity
//   - tax = subtotal × rate when the vendor opted in, else 0, rounded to the minor unit
//   - tax is split into two halves; half A carries the odd minor unit
//   - total = subtotal + deliveryFee + tax
//
// Example:
//
//	price, err := services.PricingEngine{}.Quote(lines, vendor.Fees())
//	// 2 × 100 + fee 30 + 5% tax → subtotal 200, tax 10 (5 + 5), total 240
type PricingEngine struct{}

func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Quote prices the given lines under fees. The result is meant to be stored on the
// order once, at checkout.
func (PricingEngine) Quote(lines []order.LineItem, fees catalog.FeeSchedule) (order.Price, error) {
	if len(lines) == 0 {
		return order.Price{}, errs.NewValueIsRequiredError("lines")
	}

	subtotal := kernel.ZeroMoney()
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return order.Price{}, err
		}
		subtotal = subtotal.Add(l.Total())
	}

	var taxMinor int64
	if fees.TaxEnabled {
		taxMinor = subtotal.MulRate(fees.TaxRate).MinorUnits()
	}
	halfB := taxMinor / 2
	halfA := taxMinor - halfB

	return order.NewPrice(
		subtotal,
		fees.DeliveryFee,
		kernel.MoneyFromMinorUnits(halfA),
		kernel.MoneyFromMinorUnits(halfB),
	)
}

// Commission is Σ totals × rate, rounded to the minor unit. Callers pass the totals of
// delivered orders only.
func (PricingEngine) Commission(totals []kernel.Money, rate decimal.Decimal) (kernel.Money, error) {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return kernel.Money{}, errs.NewValueIsOutOfRangeError("commission rate", rate.String(), "0", "1")
	}

	sum := kernel.ZeroMoney()
	for _, t := range totals {
		sum = sum.Add(t)
	}
	return sum.MulRate(rate), nil
}
