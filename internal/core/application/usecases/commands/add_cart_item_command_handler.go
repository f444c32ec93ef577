package commands

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// AddCartItemCommandHandler resolves the item's vendor from the catalog and adds it to
// the cart. A cart holds one vendor at a time: an item from another vendor replaces the
// whole previous selection.
type AddCartItemCommandHandler struct {
	carts   ports.CartStore
	catalog ports.CatalogReader
}

func NewAddCartItemCommandHandler(carts ports.CartStore, catalog ports.CatalogReader) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		carts:   carts,
		catalog: catalog,
	}
}

// Handle reports whether the cart's previous contents were discarded.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	items, err := h.catalog.GetMenuItems(ctx, []kernel.UUID{cmd.ItemID()})
	if err != nil {
		return false, err
	}
	if len(items) == 0 {
		return false, errs.NewObjectNotFoundError("menu item", cmd.ItemID())
	}
	item := items[0]
	if !item.IsAvailable() {
		return false, errs.NewValueIsInvalidErrorWithCause("item "+item.ID().String(), ErrItemNotAvailable)
	}

	c, err := h.carts.Get(ctx, cmd.CustomerID())
	if err != nil {
		return false, err
	}

	replaced, err := c.AddItem(item.VendorID(), item.ID(), cmd.Quantity())
	if err != nil {
		return false, err
	}

	if err = h.carts.Save(ctx, c); err != nil {
		return false, err
	}
	return replaced, nil
}
