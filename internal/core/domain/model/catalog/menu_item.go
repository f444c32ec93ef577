package catalog

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// ErrMenuItemIsNotConstructed is returned when a zero-value MenuItem is used.
var ErrMenuItemIsNotConstructed = errs.NewValueIsRequiredError("menu item must be created via NewMenuItem")

// MenuItem is a live catalog entry. Its price may change at any time; orders copy it at checkout.
type MenuItem struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	vendorID  kernel.UUID
	name      string
	price     kernel.Money
	available bool
	guard     guard.ConstructorGuard
}

func NewMenuItem(id, vendorID kernel.UUID, name string, price kernel.Money, available bool) (MenuItem, error) {
	m := MenuItem{
		id:        id,
		vendorID:  vendorID,
		name:      strings.TrimSpace(name),
		price:     price,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	var nameErr error
	if m.name == "" {
		nameErr = errs.NewValueIsRequiredError("menu item name")
	}
	if err := errors.Join(id.Validate(), vendorID.Validate(), nameErr); err != nil {
		return MenuItem{}, err
	}
	return m, nil
}

func (m MenuItem) Validate() error {
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

func (m MenuItem) ID() kernel.UUID {
	return m.id
}

func (m MenuItem) VendorID() kernel.UUID {
	return m.vendorID
}

func (m MenuItem) Name() string {
	return m.name
}

func (m MenuItem) Price() kernel.Money {
	return m.price
}

func (m MenuItem) IsAvailable() bool {
	return m.available
}
