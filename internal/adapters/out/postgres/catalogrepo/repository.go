package catalogrepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements ports.CatalogReader. The write methods exist for
// seeding and tests; catalog editing is done elsewhere.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// AddVendor inserts the vendor or overwrites an existing row with the same id.
func (r *GormCatalogRepository) AddVendor(ctx context.Context, v catalog.Vendor) error {
	if err := v.Validate(); err != nil {
		return err
	}
	dto := vendorFromDomain(v)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}

func (r *GormCatalogRepository) AddMenuItem(ctx context.Context, m catalog.MenuItem) error {
	if err := m.Validate(); err != nil {
		return err
	}
	dto := menuItemFromDomain(m)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}

func (r *GormCatalogRepository) GetVendor(ctx context.Context, id kernel.UUID) (catalog.Vendor, error) {
	if err := id.Validate(); err != nil {
		return catalog.Vendor{}, err
	}

	var dto VendorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Vendor{}, errs.NewObjectNotFoundError("vendor", id.String())
		}
		return catalog.Vendor{}, err
	}
	return vendorToDomain(dto)
}

func (r *GormCatalogRepository) GetMenuItems(ctx context.Context, ids []kernel.UUID) ([]catalog.MenuItem, error) {
	if len(ids) == 0 {
		return []catalog.MenuItem{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]catalog.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := menuItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
