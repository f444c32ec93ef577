package order

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// VendorRef is the vendor id with its name denormalised for display.
type VendorRef struct {
	ID   kernel.UUID
	Name string
}

func (v VendorRef) Validate() error {
	if err := v.ID.Validate(); err != nil {
		return err
	}
	if v.Name == "" {
		return errs.NewValueIsRequiredError("vendor name")
	}
	return nil
}

// AgentRef is the assigned delivery agent: id plus display name.
type AgentRef struct {
	ID   kernel.UUID
	Name string
}

func (a AgentRef) Validate() error {
	return a.ID.Validate()
}
