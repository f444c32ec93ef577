package kernel

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Role identifies who is calling. The edge table of the order state machine is keyed by it.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleVendor
	RoleDeliveryAgent
	RoleAdmin
	// RoleSystem is the delivery coordinator acting on behalf of the vendor or the agent.
	// It is never accepted from an external token.
	RoleSystem
)

var roleStrings = map[Role]string{
	RoleCustomer:      "customer",
	RoleVendor:        "vendor",
	RoleDeliveryAgent: "delivery-agent",
	RoleAdmin:         "admin",
	RoleSystem:        "system",
}

func (r Role) String() string {
	if s, ok := roleStrings[r]; ok {
		return s
	}
	return "unknown"
}

// ParseRole accepts the wire names presented by the identity collaborator.
// "system" is rejected: it is internal only.
func ParseRole(s string) (Role, error) {
	for r, str := range roleStrings {
		if str == s && r != RoleSystem {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// Actor is the trusted caller identity: a role and the id of the customer, vendor, agent or admin.
type Actor struct {
	Role Role
	ID   UUID
}

// SystemActor is the identity the delivery coordinator uses for the edges it owns.
func SystemActor() Actor {
	return Actor{Role: RoleSystem}
}

func (a Actor) Validate() error {
	if _, ok := roleStrings[a.Role]; !ok {
		return errs.NewValueIsInvalidError("actor role")
	}
	if a.Role == RoleSystem {
		return nil
	}
	return a.ID.Validate()
}

func (a Actor) String() string {
	if a.Role == RoleSystem {
		return a.Role.String()
	}
	return fmt.Sprintf("%s:%s", a.Role, a.ID)
}
