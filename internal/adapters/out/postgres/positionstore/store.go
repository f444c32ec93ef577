// Package positionstore keeps the last known position of every delivery agent.
package positionstore

import (
	"context"
	"errors"
	"time"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChannelAgentPosition is the notification channel Put signals on when notify is enabled.
const ChannelAgentPosition = "agent_position"

type PositionDTO struct {
	AgentID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Lat        float64   `gorm:"not null"`
	Lng        float64   `gorm:"not null"`
	RecordedAt time.Time `gorm:"not null"`
}

func (PositionDTO) TableName() string {
	return "agent_positions"
}

// GormPositionStore implements ports.PositionStore on a single upserted row per agent.
type GormPositionStore struct {
	db     *gorm.DB
	notify bool
}

func NewGormPositionStore(db *gorm.DB) *GormPositionStore {
	return &GormPositionStore{db: db}
}

// WithNotify makes Put raise a pg_notify on ChannelAgentPosition carrying the agent id,
// so that other instances can pick the new position up.
func (s *GormPositionStore) WithNotify() *GormPositionStore {
	s.notify = true
	return s
}

func (s *GormPositionStore) Put(ctx context.Context, position agent.Position) error {
	if err := position.AgentID.Validate(); err != nil {
		return err
	}

	dto := PositionDTO{
		AgentID:    position.AgentID.Bytes(),
		Lat:        position.Point.Lat(),
		Lng:        position.Point.Lng(),
		RecordedAt: position.RecordedAt.UTC(),
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "agent_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"lat", "lng", "recorded_at"}),
		}).Create(&dto).Error
		if err != nil {
			return err
		}

		if !s.notify {
			return nil
		}
		return tx.Exec("SELECT pg_notify(?, ?)", ChannelAgentPosition, position.AgentID.String()).Error
	})
}

func (s *GormPositionStore) Get(ctx context.Context, agentID kernel.UUID) (agent.Position, error) {
	if err := agentID.Validate(); err != nil {
		return agent.Position{}, err
	}

	var dto PositionDTO
	if err := s.db.WithContext(ctx).First(&dto, "agent_id = ?", agentID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return agent.Position{}, errs.NewObjectNotFoundError("agent position", agentID.String())
		}
		return agent.Position{}, err
	}

	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return agent.Position{}, err
	}
	return agent.NewPosition(agentID, point, dto.RecordedAt)
}
