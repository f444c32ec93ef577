// Package catalogrepo reads vendors and their menus for checkout.
package catalogrepo

import (
	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VendorDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"type:varchar(255);not null"`
	DeliveryFee    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TaxEnabled     bool            `gorm:"not null"`
	TaxRate        decimal.Decimal `gorm:"type:numeric(5,4);not null"`
	CommissionRate decimal.Decimal `gorm:"type:numeric(5,4);not null"`
}

func (VendorDTO) TableName() string {
	return "vendors"
}

type MenuItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VendorID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Available bool            `gorm:"not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func vendorFromDomain(v catalog.Vendor) VendorDTO {
	fees := v.Fees()
	return VendorDTO{
		ID:             v.ID().Bytes(),
		Name:           v.Name(),
		DeliveryFee:    fees.DeliveryFee.Decimal(),
		TaxEnabled:     fees.TaxEnabled,
		TaxRate:        fees.TaxRate,
		CommissionRate: v.CommissionRate(),
	}
}

func vendorToDomain(dto VendorDTO) (catalog.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Vendor{}, err
	}
	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return catalog.Vendor{}, err
	}
	fees, err := catalog.NewFeeSchedule(fee, dto.TaxEnabled, dto.TaxRate)
	if err != nil {
		return catalog.Vendor{}, err
	}
	return catalog.NewVendor(id, dto.Name, fees, dto.CommissionRate)
}

func menuItemFromDomain(m catalog.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:        m.ID().Bytes(),
		VendorID:  m.VendorID().Bytes(),
		Name:      m.Name(),
		Price:     m.Price().Decimal(),
		Available: m.IsAvailable(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.MenuItem{}, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return catalog.MenuItem{}, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return catalog.MenuItem{}, err
	}
	return catalog.NewMenuItem(id, vendorID, dto.Name, price, dto.Available)
}
