package queries

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetVendorCommissionQueryHandler sums the frozen totals of a vendor's delivered orders
// straight from the orders table and applies the vendor's commission rate.
type GetVendorCommissionQueryHandler struct {
	db      *gorm.DB
	catalog ports.CatalogReader
	pricing services.PricingEngine
}

func NewGetVendorCommissionQueryHandler(
	db *gorm.DB,
	catalog ports.CatalogReader,
	pricing services.PricingEngine,
) GetVendorCommissionQueryHandler {
	return GetVendorCommissionQueryHandler{db: db, catalog: catalog, pricing: pricing}
}

// Handle lets a vendor see only its own report.
func (h GetVendorCommissionQueryHandler) Handle(
	ctx context.Context,
	query GetVendorCommissionQuery,
) (GetVendorCommissionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetVendorCommissionQueryResponse{}, err
	}

	actor := query.Actor()
	switch {
	case actor.Role == kernel.RoleAdmin:
	case actor.Role == kernel.RoleVendor && actor.ID.IsEqual(query.VendorID()):
	default:
		return GetVendorCommissionQueryResponse{}, errs.NewUnauthorizedError(actor.Role, "read the commission report")
	}

	vendor, err := h.catalog.GetVendor(ctx, query.VendorID())
	if err != nil {
		return GetVendorCommissionQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			total
		FROM orders
		WHERE vendor_id = ?
			AND status = ?
			AND created_at >= ?
			AND created_at < ?
	`, query.VendorID().String(), order.Delivered.String(), query.From(), query.To()).Rows()
	if err != nil {
		return GetVendorCommissionQueryResponse{}, err
	}
	defer rows.Close()

	totals := make([]kernel.Money, 0)
	for rows.Next() {
		var total decimal.Decimal
		if err = rows.Scan(&total); err != nil {
			return GetVendorCommissionQueryResponse{}, err
		}
		money, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return GetVendorCommissionQueryResponse{}, moneyErr
		}
		totals = append(totals, money)
	}
	if err = rows.Err(); err != nil {
		return GetVendorCommissionQueryResponse{}, err
	}

	gross := kernel.ZeroMoney()
	for _, t := range totals {
		gross = gross.Add(t)
	}
	commission, err := h.pricing.Commission(totals, vendor.CommissionRate())
	if err != nil {
		return GetVendorCommissionQueryResponse{}, err
	}

	return GetVendorCommissionQueryResponse{
		VendorID:   query.VendorID(),
		From:       query.From(),
		To:         query.To(),
		Orders:     len(totals),
		Gross:      gross,
		Rate:       vendor.CommissionRate(),
		Commission: commission,
	}, nil
}
