package ports

import (
	"context"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agents.
type AgentRepository interface {
	// Add persists a new agent.
	Add(ctx context.Context, a *agent.Agent) error

	// Update persists the agent's delivery bookkeeping.
	Update(ctx context.Context, a *agent.Agent) error

	// Get retrieves an agent by id and, inside a transaction, locks its row until
	// commit so concurrent assignments serialise on the counter.
	// Returns errs.ErrObjectNotFound when the agent does not exist.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// ListByVendor returns the vendor's roster ordered by name.
	ListByVendor(ctx context.Context, vendorID kernel.UUID) ([]*agent.Agent, error)
}
