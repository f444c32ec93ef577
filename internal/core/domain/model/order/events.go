package order

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
)

// StatusChanged is recorded once per successful transition. The unit of work hands it to
// the synchronization layer and the notifier after commit.
type StatusChanged struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	VendorID   kernel.UUID
	From       Status
	To         Status
	By         kernel.Role
	At         time.Time
}
