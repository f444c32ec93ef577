package cart

import (
	"errors"
	"fmt"
	"slices"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Line is an item reference and a quantity. Prices are looked up at checkout, never stored here.
type Line struct {
	ItemID   kernel.UUID
	Quantity int
}

// Cart belongs to one customer and holds items from at most one vendor.
//
// Adding an item from a different vendor replaces the whole cart with that one item;
// carts from two vendors are never merged.
type Cart struct {
	customerID kernel.UUID
	vendorID   kernel.UUID
	lines      []Line
	guard      guard.ConstructorGuard
}

func NewCart(customerID kernel.UUID) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	return &Cart{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// VendorID is zero while the cart is empty.
func (c *Cart) VendorID() kernel.UUID {
	return c.vendorID
}

func (c *Cart) Lines() []Line {
	return slices.Clone(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddItem adds quantity of itemID sold by vendorID. It reports whether the previous
// contents were discarded because they came from another vendor.
func (c *Cart) AddItem(vendorID, itemID kernel.UUID, quantity int) (bool, error) {
	if err := errors.Join(vendorID.Validate(), itemID.Validate()); err != nil {
		return false, err
	}
	if quantity <= 0 {
		return false, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	replaced := false
	if !c.IsEmpty() && !c.vendorID.IsEqual(vendorID) {
		c.lines = nil
		replaced = true
	}
	c.vendorID = vendorID

	for i := range c.lines {
		if c.lines[i].ItemID.IsEqual(itemID) {
			c.lines[i].Quantity += quantity
			return replaced, nil
		}
	}
	c.lines = append(c.lines, Line{ItemID: itemID, Quantity: quantity})
	return replaced, nil
}

// RemoveItem drops itemID. Removing the last line also forgets the vendor.
func (c *Cart) RemoveItem(itemID kernel.UUID) {
	c.lines = slices.DeleteFunc(c.lines, func(l Line) bool { return l.ItemID.IsEqual(itemID) })
	if c.IsEmpty() {
		c.vendorID = kernel.UUID{}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
	c.vendorID = kernel.UUID{}
}
