// Package deliveryrequestrepo persists delivery offers made to agents.
package deliveryrequestrepo

import (
	"time"

	"orderflow/internal/core/domain/model/dispatch"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryRequestDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	VendorID   uuid.UUID  `gorm:"type:uuid;not null"`
	AgentID    uuid.UUID  `gorm:"type:uuid;not null"`
	Status     string     `gorm:"type:varchar(16);not null"`
	OfferedAt  time.Time  `gorm:"not null"`
	ExpiresAt  time.Time  `gorm:"not null;index"`
	ResolvedAt *time.Time `gorm:""`
}

func (DeliveryRequestDTO) TableName() string {
	return "delivery_requests"
}

func fromDomain(r *dispatch.DeliveryRequest) DeliveryRequestDTO {
	return DeliveryRequestDTO{
		ID:         r.ID().Bytes(),
		OrderID:    r.OrderID().Bytes(),
		VendorID:   r.VendorID().Bytes(),
		AgentID:    r.AgentID().Bytes(),
		Status:     r.Status().String(),
		OfferedAt:  r.OfferedAt(),
		ExpiresAt:  r.ExpiresAt(),
		ResolvedAt: r.ResolvedAt(),
	}
}

func toDomain(dto DeliveryRequestDTO) (*dispatch.DeliveryRequest, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.OrderID, dto.VendorID, dto.AgentID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	status, err := dispatch.ParseRequestStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var resolvedAt *time.Time
	if dto.ResolvedAt != nil {
		at := dto.ResolvedAt.UTC()
		resolvedAt = &at
	}

	return dispatch.RestoreDeliveryRequest(ids[0], ids[1], ids[2], ids[3], status,
		dto.OfferedAt.UTC(), dto.ExpiresAt.UTC(), resolvedAt)
}
