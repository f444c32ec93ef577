package queries

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/guard"
)

var ErrGetAgentPositionQueryIsNotConstructed = errors.New(
	"GetAgentPositionQuery must be created via NewGetAgentPositionQuery constructor",
)

// GetAgentPositionQuery reads the last reported position of an agent.
type GetAgentPositionQuery struct {
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAgentPositionQuery(agentID kernel.UUID) (GetAgentPositionQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentPositionQuery{}, err
	}
	return GetAgentPositionQuery{agentID: agentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAgentPositionQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentPositionQueryIsNotConstructed)
}

func (q GetAgentPositionQuery) AgentID() kernel.UUID {
	return q.agentID
}

type GetAgentPositionQueryHandler struct {
	positions ports.PositionStore
}

func NewGetAgentPositionQueryHandler(positions ports.PositionStore) GetAgentPositionQueryHandler {
	return GetAgentPositionQueryHandler{positions: positions}
}

// Handle returns ObjectNotFound when the agent never reported.
func (h GetAgentPositionQueryHandler) Handle(ctx context.Context, query GetAgentPositionQuery) (agent.Position, error) {
	if err := query.Validate(); err != nil {
		return agent.Position{}, err
	}
	return h.positions.Get(ctx, query.AgentID())
}
