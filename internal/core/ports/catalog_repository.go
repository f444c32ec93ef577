package ports

import (
	"context"

	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/kernel"
)

// CatalogReader gives read access to vendors and their menus. Prices are read live at
// checkout and then frozen into the order.
type CatalogReader interface {
	// GetVendor returns errs.ErrObjectNotFound for an unknown vendor.
	GetVendor(ctx context.Context, id kernel.UUID) (catalog.Vendor, error)

	// GetMenuItems returns the items found among ids. Missing ids are simply absent
	// from the result.
	GetMenuItems(ctx context.Context, ids []kernel.UUID) ([]catalog.MenuItem, error)
}
