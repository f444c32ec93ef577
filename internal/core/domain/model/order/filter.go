package order

import (
	"slices"
	"time"

	"orderflow/internal/core/domain/model/kernel"
)

// Filter scopes a list query or a live subscription. Zero-valued fields do not constrain.
// All set fields must match.
type Filter struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	VendorID   kernel.UUID
	AgentID    kernel.UUID
	Statuses   []Status

	// UpdatedSince keeps orders last changed at or after the instant.
	UpdatedSince time.Time
}

// Matches evaluates the filter against a snapshot.
func (f Filter) Matches(s Snapshot) bool {
	if !f.OrderID.IsZero() && !f.OrderID.IsEqual(s.ID) {
		return false
	}
	if !f.CustomerID.IsZero() && !f.CustomerID.IsEqual(s.CustomerID) {
		return false
	}
	if !f.VendorID.IsZero() && !f.VendorID.IsEqual(s.Vendor.ID) {
		return false
	}
	if !f.AgentID.IsZero() && (s.Agent == nil || !f.AgentID.IsEqual(s.Agent.ID)) {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, s.Status) {
		return false
	}
	if !f.UpdatedSince.IsZero() && s.UpdatedAt.Before(f.UpdatedSince) {
		return false
	}
	return true
}
