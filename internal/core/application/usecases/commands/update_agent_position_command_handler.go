package commands

import (
	"context"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// UpdateAgentPositionCommandHandler overwrites the agent's stored position and hands it
// to the synchronization layer. There is no queue and no retry: a failed write is the
// caller's to drop.
type UpdateAgentPositionCommandHandler struct {
	positions ports.PositionStore
	publisher ports.PositionPublisher
	clock     Clock
}

// NewUpdateAgentPositionCommandHandler creates the handler. publisher may be nil when
// positions reach observers through the store's own change feed.
func NewUpdateAgentPositionCommandHandler(
	positions ports.PositionStore,
	publisher ports.PositionPublisher,
	clock Clock,
) UpdateAgentPositionCommandHandler {
	return UpdateAgentPositionCommandHandler{
		positions: positions,
		publisher: publisher,
		clock:     clock,
	}
}

// Handle only lets an agent report its own position.
func (h UpdateAgentPositionCommandHandler) Handle(ctx context.Context, cmd UpdateAgentPositionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if actor.Role != kernel.RoleAdmin && (actor.Role != kernel.RoleDeliveryAgent || !actor.ID.IsEqual(cmd.AgentID())) {
		return errs.NewUnauthorizedError(actor.Role, "report the position of agent "+cmd.AgentID().String())
	}

	recordedAt := cmd.RecordedAt()
	if recordedAt.IsZero() {
		recordedAt = h.clock()
	}

	position, err := agent.NewPosition(cmd.AgentID(), cmd.Point(), recordedAt)
	if err != nil {
		return err
	}

	if err = h.positions.Put(ctx, position); err != nil {
		return err
	}

	if h.publisher != nil {
		h.publisher.PublishPosition(ctx, position)
	}
	return nil
}
