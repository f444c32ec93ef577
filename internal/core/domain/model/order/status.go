package order

import (
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It is a closed enum with an
// explicit transition table; every workflow decision in the service goes through it.
//
// State transitions (role allowed on each edge in brackets):
//
//	Pending ──[vendor]──> Accepted ──[vendor]──> Preparing ──[system]──> OutForDelivery ──[system]──> Delivered
//	   │                     │   └──────────[system]───────────────────────────^
//	   │                     │                    │
//	   └──[vendor,customer,admin]──> Cancelled <──┴──[vendor,admin]
//
// The system role is the delivery coordinator: the edge into OutForDelivery is taken only by
// assignment and the edge into Delivered only by a successful confirmation code check.
//
// String values are persisted and sent over the wire and must not change.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status. The vendor alert stays on while any order is pending.
	Pending

	// Accepted means the vendor took the order.
	Accepted

	// Preparing means the vendor is preparing the order.
	Preparing

	// OutForDelivery means an agent is assigned and a confirmation code exists.
	OutForDelivery

	// Delivered is terminal. Only the rating flag may change afterwards.
	Delivered

	// Cancelled is terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:        "pending",
		Accepted:       "accepted",
		Preparing:      "preparing",
		OutForDelivery: "out-for-delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// transitions is the edge table: source -> target -> roles allowed to take the edge.
// A pair missing from the table is not an edge.
func transitions() map[Status]map[Status][]kernel.Role {
	return map[Status]map[Status][]kernel.Role{
		Pending: {
			Accepted:  {kernel.RoleVendor},
			Cancelled: {kernel.RoleVendor, kernel.RoleCustomer, kernel.RoleAdmin},
		},
		Accepted: {
			Preparing:      {kernel.RoleVendor},
			OutForDelivery: {kernel.RoleSystem},
			Cancelled:      {kernel.RoleVendor, kernel.RoleAdmin},
		},
		Preparing: {
			OutForDelivery: {kernel.RoleSystem},
			Cancelled:      {kernel.RoleVendor, kernel.RoleAdmin},
		},
		OutForDelivery: {
			Delivered: {kernel.RoleSystem},
		},
	}
}

// ParseStatus maps a persisted or wire string back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the six known statuses.
//
// Unknown (0) and any other values are invalid. Use it on values coming from
// the database or the API before acting on them.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further workflow transition can leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Rank orders statuses along the forward path. The two terminal statuses share the top rank.
// Observers use it to drop stale updates: a snapshot whose rank is lower than one already
// seen for the same order is out of date.
func (s Status) Rank() int {
	switch s {
	case Pending:
		return 1
	case Accepted:
		return 2
	case Preparing:
		return 3
	case OutForDelivery:
		return 4
	case Delivered, Cancelled:
		return 5
	default:
		return 0
	}
}

// CanTransition reports whether the edge s -> to exists, regardless of role.
func (s Status) CanTransition(to Status) bool {
	_, ok := transitions()[s][to]
	return ok
}

// AllowedRoles returns the roles allowed on s -> to, or nil when the edge does not exist.
func (s Status) AllowedRoles(to Status) []kernel.Role {
	return transitions()[s][to]
}

// Transition validates the edge s -> to for the given role.
//
// Returns:
//   - (to, nil) when the edge exists and role may take it
//   - InvalidStateError when s is terminal
//   - InvalidTransitionError when the edge does not exist, including the same-state no-op
//   - UnauthorizedError when the edge exists but role is not allowed on it
//
// Example:
//
//	next, err := order.Pending.Transition(order.Accepted, kernel.RoleVendor)
//	// next == order.Accepted
func (s Status) Transition(to Status, role kernel.Role) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, errs.NewInvalidTransitionError(s, to)
	}
	if s == to {
		return Unknown, errs.NewInvalidTransitionError(s, to)
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidStateError("transition to "+to.String(), s)
	}

	roles, ok := transitions()[s][to]
	if !ok {
		return Unknown, errs.NewInvalidTransitionError(s, to)
	}

	for _, r := range roles {
		if r == role {
			return to, nil
		}
	}

	return Unknown, errs.NewUnauthorizedError(role, fmt.Sprintf("move an order from %s to %s", s, to))
}
