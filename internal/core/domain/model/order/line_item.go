package order

import (
	"errors"
	"fmt"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a zero-value LineItem is used.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError("line item must be created via NewLineItem")

// LineItem is one cart line frozen into an order: the catalog item, its name and unit
// price as they were at checkout, and the quantity. A placed order never re-reads the catalog.
type LineItem struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int
	guard     guard.ConstructorGuard
}

// NewLineItem validates the item id, a non-blank name and a positive quantity.
func NewLineItem(itemID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (LineItem, error) {
	li := LineItem{
		itemID:    itemID,
		name:      strings.TrimSpace(name),
		unitPrice: unitPrice,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}

	var nameErr, qtyErr error
	if li.name == "" {
		nameErr = errs.NewValueIsRequiredError("line item name")
	}
	if quantity <= 0 {
		qtyErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	if err := errors.Join(itemID.Validate(), nameErr, qtyErr); err != nil {
		return LineItem{}, err
	}

	return li, nil
}

func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

func (l LineItem) ItemID() kernel.UUID {
	return l.itemID
}

func (l LineItem) Name() string {
	return l.name
}

func (l LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l LineItem) Quantity() int {
	return l.quantity
}

// Total is unitPrice × quantity.
func (l LineItem) Total() kernel.Money {
	return l.unitPrice.Mul(l.quantity)
}
