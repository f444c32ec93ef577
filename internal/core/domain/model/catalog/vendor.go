package catalog

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrVendorIsNotConstructed is returned when a zero-value Vendor is used.
var ErrVendorIsNotConstructed = errs.NewValueIsRequiredError("vendor must be created via NewVendor")

// Vendor is the read model of a restaurant or store: its fee schedule and the platform
// commission rate. Catalog editing lives outside this service.
type Vendor struct { //nolint:recvcheck //using for validation
	id             kernel.UUID
	name           string
	fees           FeeSchedule
	commissionRate decimal.Decimal
	guard          guard.ConstructorGuard
}

func NewVendor(id kernel.UUID, name string, fees FeeSchedule, commissionRate decimal.Decimal) (Vendor, error) {
	v := Vendor{
		id:             id,
		name:           strings.TrimSpace(name),
		fees:           fees,
		commissionRate: commissionRate,
		guard:          guard.NewConstructorGuard(),
	}

	var nameErr, rateErr error
	if v.name == "" {
		nameErr = errs.NewValueIsRequiredError("vendor name")
	}
	if commissionRate.IsNegative() || commissionRate.GreaterThan(decimal.NewFromInt(1)) {
		rateErr = errs.NewValueIsOutOfRangeError("commission rate", commissionRate.String(), "0", "1")
	}

	if err := errors.Join(id.Validate(), nameErr, rateErr); err != nil {
		return Vendor{}, err
	}
	return v, nil
}

func (v Vendor) Validate() error {
	return v.guard.Validate(ErrVendorIsNotConstructed)
}

func (v Vendor) ID() kernel.UUID {
	return v.id
}

func (v Vendor) Name() string {
	return v.name
}

func (v Vendor) Fees() FeeSchedule {
	return v.fees
}

func (v Vendor) CommissionRate() decimal.Decimal {
	return v.commissionRate
}
