package agent

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrNameIsRequired        = errs.NewValueIsRequiredError("name")
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")
)

// Agent is a delivery agent on one vendor's roster.
//
// The agent keeps a count of deliveries currently assigned to it. Assignment increments
// it, delivery or cancellation of an assigned order decrements it; the two are symmetric
// and the count never goes below zero.
type Agent struct {
	id               kernel.UUID
	vendorID         kernel.UUID
	name             string
	phone            string
	activeDeliveries int
	guard            guard.ConstructorGuard
}

// NewAgent creates an agent with no active deliveries.
func NewAgent(id, vendorID kernel.UUID, name, phone string) (*Agent, error) {
	return RestoreAgent(id, vendorID, name, phone, 0)
}

// RestoreAgent rebuilds an agent from storage.
func RestoreAgent(id, vendorID kernel.UUID, name, phone string, activeDeliveries int) (*Agent, error) {
	a := &Agent{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setVendor(vendorID),
		a.setName(name),
		a.setActiveDeliveries(activeDeliveries),
	); err != nil {
		return nil, err
	}
	a.phone = strings.TrimSpace(phone)

	return a, nil
}

func (a *Agent) IsEqual(other *Agent) bool {
	if other == nil {
		return false
	}
	return a.id.IsEqual(other.id)
}

func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

func (a *Agent) ID() kernel.UUID {
	return a.id
}

func (a *Agent) VendorID() kernel.UUID {
	return a.vendorID
}

func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) Phone() string {
	return a.phone
}

func (a *Agent) ActiveDeliveries() int {
	return a.activeDeliveries
}

// BelongsTo reports whether the agent is on vendorID's roster.
func (a *Agent) BelongsTo(vendorID kernel.UUID) bool {
	return a.vendorID.IsEqual(vendorID)
}

// StartDelivery records one more assigned delivery.
func (a *Agent) StartDelivery() {
	a.activeDeliveries++
}

// FinishDelivery releases one assigned delivery. It is a no-op at zero.
func (a *Agent) FinishDelivery() {
	if a.activeDeliveries > 0 {
		a.activeDeliveries--
	}
}

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setVendor(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendor", err)
	}
	a.vendorID = vendorID
	return nil
}

func (a *Agent) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Agent) setActiveDeliveries(n int) error {
	if n < 0 {
		return errs.NewValueIsOutOfRangeError("active deliveries", n, 0, "+inf")
	}
	a.activeDeliveries = n
	return nil
}
