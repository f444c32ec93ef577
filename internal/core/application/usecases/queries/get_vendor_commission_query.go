package queries

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetVendorCommissionQueryIsNotConstructed = errors.New(
	"GetVendorCommissionQuery must be created via NewGetVendorCommissionQuery constructor",
)

// GetVendorCommissionQuery reports the platform commission owed by a vendor for the
// orders delivered among those placed in [from, to).
//
// Example:
//
//	query, _ := NewGetVendorCommissionQuery(vendorID, monthStart, monthStart.AddDate(0, 1, 0), actor)
//	report, err := handler.Handle(ctx, query)
//	fmt.Printf("%d orders, %s gross, %s commission\n", report.Orders, report.Gross, report.Commission)
type GetVendorCommissionQuery struct {
	vendorID kernel.UUID
	from     time.Time
	to       time.Time
	actor    kernel.Actor

	guard guard.ConstructorGuard
}

func NewGetVendorCommissionQuery(vendorID kernel.UUID, from, to time.Time, actor kernel.Actor) (GetVendorCommissionQuery, error) {
	var rangeErr error
	if from.IsZero() || to.IsZero() || !to.After(from) {
		rangeErr = errs.NewValueIsInvalidErrorWithCause("period", fmt.Errorf("%s is not before %s", from, to))
	}
	if err := errors.Join(vendorID.Validate(), actor.Validate(), rangeErr); err != nil {
		return GetVendorCommissionQuery{}, err
	}

	return GetVendorCommissionQuery{
		vendorID: vendorID,
		from:     from.UTC(),
		to:       to.UTC(),
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetVendorCommissionQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorCommissionQueryIsNotConstructed)
}

func (q GetVendorCommissionQuery) VendorID() kernel.UUID {
	return q.vendorID
}

func (q GetVendorCommissionQuery) From() time.Time {
	return q.from
}

func (q GetVendorCommissionQuery) To() time.Time {
	return q.to
}

func (q GetVendorCommissionQuery) Actor() kernel.Actor {
	return q.actor
}

type GetVendorCommissionQueryResponse struct {
	VendorID   kernel.UUID
	From       time.Time
	To         time.Time
	Orders     int
	Gross      kernel.Money
	Rate       decimal.Decimal
	Commission kernel.Money
}
