package ports

import (
	"context"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"
)

// PositionStore keeps the latest known position of each delivery agent. Writes overwrite;
// there is no history.
type PositionStore interface {
	// Put upserts the agent's position. Last writer wins.
	Put(ctx context.Context, position agent.Position) error

	// Get returns errs.ErrObjectNotFound when the agent never reported a position.
	Get(ctx context.Context, agentID kernel.UUID) (agent.Position, error)
}
