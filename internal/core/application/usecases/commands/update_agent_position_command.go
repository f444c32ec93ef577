package commands

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrUpdateAgentPositionCommandIsNotConstructed = errors.New(
	"UpdateAgentPositionCommand must be created via NewUpdateAgentPositionCommand constructor",
)

// UpdateAgentPositionCommand carries one location sample from an agent's device.
type UpdateAgentPositionCommand struct { //nolint:recvcheck //using for validation
	agentID    kernel.UUID
	point      kernel.GeoPoint
	recordedAt time.Time
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

// NewUpdateAgentPositionCommand creates the command. A zero recordedAt is filled in by
// the handler with the time of receipt.
func NewUpdateAgentPositionCommand(
	agentID kernel.UUID,
	point kernel.GeoPoint,
	recordedAt time.Time,
	actor kernel.Actor,
) (UpdateAgentPositionCommand, error) {
	if err := errors.Join(agentID.Validate(), point.Validate(), actor.Validate()); err != nil {
		return UpdateAgentPositionCommand{}, err
	}
	return UpdateAgentPositionCommand{
		agentID:    agentID,
		point:      point,
		recordedAt: recordedAt,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateAgentPositionCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAgentPositionCommandIsNotConstructed)
}

func (c UpdateAgentPositionCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c UpdateAgentPositionCommand) Point() kernel.GeoPoint {
	return c.point
}

func (c UpdateAgentPositionCommand) RecordedAt() time.Time {
	return c.recordedAt
}

func (c UpdateAgentPositionCommand) Actor() kernel.Actor {
	return c.actor
}
