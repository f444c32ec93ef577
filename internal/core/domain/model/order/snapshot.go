package order

import (
	"slices"
	"time"

	"orderflow/internal/core/domain/model/kernel"
)

// Snapshot is a read-only copy of an order's full current state. It is what repositories
// restore from, what the synchronization layer fans out and what views render.
// Mutating a Snapshot never affects the order it came from.
type Snapshot struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	Vendor           VendorRef
	Agent            *AgentRef
	Lines            []LineItem
	Price            Price
	Target           DeliveryTarget
	Payment          Payment
	Status           Status
	ConfirmationCode ConfirmationCode
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Version          int64
	Rated            bool
}

// WithoutCode returns a copy with the confirmation code removed. Only the customer
// may see the code; every other observer gets this form.
func (s Snapshot) WithoutCode() Snapshot {
	s.ConfirmationCode = ""
	return s
}

// IsNewerThan reports whether s supersedes prev for the same order: a higher status rank,
// or the same status at a higher version.
func (s Snapshot) IsNewerThan(prev Snapshot) bool {
	if s.Status.Rank() != prev.Status.Rank() {
		return s.Status.Rank() > prev.Status.Rank()
	}
	return s.Version > prev.Version
}

func (s Snapshot) clone() Snapshot {
	s.Lines = slices.Clone(s.Lines)
	if s.Agent != nil {
		a := *s.Agent
		s.Agent = &a
	}
	return s
}
