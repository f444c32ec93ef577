package order

import (
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when a zero-value Price is used.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice")

// Price is the itemised total computed once at checkout.
//
// The tax is split into two halves for the two co-located tax authorities (CGST and SGST).
// When the tax is an odd number of minor units, half A carries the extra unit.
//
// Invariant: Total == Subtotal + DeliveryFee + Tax and Tax == TaxHalfA + TaxHalfB.
type Price struct { //nolint:recvcheck //using for validation
	subtotal    kernel.Money
	deliveryFee kernel.Money
	taxHalfA    kernel.Money
	taxHalfB    kernel.Money
	guard       guard.ConstructorGuard
}

// NewPrice assembles a price from its parts and derives tax and total from them.
// The halves may differ by at most one minor unit, with half A never smaller.
func NewPrice(subtotal, deliveryFee, taxHalfA, taxHalfB kernel.Money) (Price, error) {
	diff := taxHalfA.MinorUnits() - taxHalfB.MinorUnits()
	if diff < 0 || diff > 1 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"tax split",
			fmt.Errorf("halves %s and %s are not an even split", taxHalfA, taxHalfB),
		)
	}

	return Price{
		subtotal:    subtotal,
		deliveryFee: deliveryFee,
		taxHalfA:    taxHalfA,
		taxHalfB:    taxHalfB,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

func (p Price) Subtotal() kernel.Money {
	return p.subtotal
}

func (p Price) DeliveryFee() kernel.Money {
	return p.deliveryFee
}

// TaxHalfA is the CGST share.
func (p Price) TaxHalfA() kernel.Money {
	return p.taxHalfA
}

// TaxHalfB is the SGST share.
func (p Price) TaxHalfB() kernel.Money {
	return p.taxHalfB
}

func (p Price) Tax() kernel.Money {
	return p.taxHalfA.Add(p.taxHalfB)
}

func (p Price) Total() kernel.Money {
	return p.subtotal.Add(p.deliveryFee).Add(p.Tax())
}
