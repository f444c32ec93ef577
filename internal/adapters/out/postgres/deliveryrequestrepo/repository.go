package deliveryrequestrepo

import (
	"context"
	"errors"
	"time"

	"orderflow/internal/core/domain/model/dispatch"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRequestRepository implements ports.DeliveryRequestRepository using GORM.
type GormDeliveryRequestRepository struct {
	db *gorm.DB
}

func NewGormDeliveryRequestRepository(db *gorm.DB) *GormDeliveryRequestRepository {
	return &GormDeliveryRequestRepository{db: db}
}

func (r *GormDeliveryRequestRepository) Add(ctx context.Context, req *dispatch.DeliveryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	dto := fromDomain(req)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the resolution of a request.
func (r *GormDeliveryRequestRepository) Update(ctx context.Context, req *dispatch.DeliveryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	dto := fromDomain(req)
	result := r.db.WithContext(ctx).
		Model(&DeliveryRequestDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":      dto.Status,
			"resolved_at": dto.ResolvedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery request", req.ID().String())
	}
	return nil
}

// Get locks the row inside a transaction so that accept, reject and the expiry sweep
// resolve a request once.
func (r *GormDeliveryRequestRepository) Get(ctx context.Context, id kernel.UUID) (*dispatch.DeliveryRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryRequestDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDeliveryRequestRepository) HasOpenForOrder(ctx context.Context, orderID kernel.UUID, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&DeliveryRequestDTO{}).
		Where("order_id = ? AND status = ? AND expires_at >= ?", orderID.Bytes(), dispatch.Offered.String(), now.UTC()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListExpired skips rows locked by a concurrent accept so that the sweep never waits
// on an agent's answer.
func (r *GormDeliveryRequestRepository) ListExpired(
	ctx context.Context,
	now time.Time,
	limit int,
) ([]*dispatch.DeliveryRequest, error) {
	var dtos []DeliveryRequestDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ? AND expires_at < ?", dispatch.Offered.String(), now.UTC()).
		Order("expires_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*dispatch.DeliveryRequest, 0, len(dtos))
	for _, dto := range dtos {
		req, reqErr := toDomain(dto)
		if reqErr != nil {
			return nil, reqErr
		}
		requests = append(requests, req)
	}
	return requests, nil
}
