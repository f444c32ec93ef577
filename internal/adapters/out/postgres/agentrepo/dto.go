// Package agentrepo persists vendor rosters of delivery agents.
package agentrepo

import (
	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type AgentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Phone            string    `gorm:"type:varchar(32);not null;default:''"`
	ActiveDeliveries int       `gorm:"type:int;not null;default:0"`
}

func (AgentDTO) TableName() string {
	return "agents"
}

func fromDomain(a *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:               a.ID().Bytes(),
		VendorID:         a.VendorID().Bytes(),
		Name:             a.Name(),
		Phone:            a.Phone(),
		ActiveDeliveries: a.ActiveDeliveries(),
	}
}

func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	return agent.RestoreAgent(id, vendorID, dto.Name, dto.Phone, dto.ActiveDeliveries)
}
