package order

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// ErrDeliveryTargetIsNotConstructed is returned when a zero-value DeliveryTarget is used.
var ErrDeliveryTargetIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery target must be created via NewDeliveryTarget")

// DeliveryTarget is where and to whom the order goes: a textual address, an optional
// coordinate and a contact phone number.
type DeliveryTarget struct { //nolint:recvcheck //using for validation
	address string
	point   *kernel.GeoPoint
	phone   string
	guard   guard.ConstructorGuard
}

func NewDeliveryTarget(address string, point *kernel.GeoPoint, phone string) (DeliveryTarget, error) {
	t := DeliveryTarget{
		address: strings.TrimSpace(address),
		phone:   strings.TrimSpace(phone),
		guard:   guard.NewConstructorGuard(),
	}

	var addrErr, phoneErr, pointErr error
	if t.address == "" {
		addrErr = errs.NewValueIsRequiredError("address")
	}
	if t.phone == "" {
		phoneErr = errs.NewValueIsRequiredError("phone")
	}
	if point != nil {
		if pointErr = point.Validate(); pointErr == nil {
			p := *point
			t.point = &p
		}
	}

	if err := errors.Join(addrErr, phoneErr, pointErr); err != nil {
		return DeliveryTarget{}, err
	}

	return t, nil
}

func (t DeliveryTarget) Validate() error {
	return t.guard.Validate(ErrDeliveryTargetIsNotConstructed)
}

func (t DeliveryTarget) Address() string {
	return t.address
}

// Point returns a copy of the coordinate, or nil when the customer gave none.
func (t DeliveryTarget) Point() *kernel.GeoPoint {
	if t.point == nil {
		return nil
	}
	p := *t.point
	return &p
}

func (t DeliveryTarget) Phone() string {
	return t.phone
}
