package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrAlreadyRated is returned by Rate on the second call.
	ErrAlreadyRated = fmt.Errorf("%w: order is already rated", errs.ErrInvalidState)

	// ErrPaymentAlreadyCompleted is returned by CompletePayment when nothing is left to record.
	ErrPaymentAlreadyCompleted = fmt.Errorf("%w: payment is already completed", errs.ErrInvalidState)
)

// Order is the aggregate root of the delivery workflow: a frozen snapshot of one customer's
// purchase from one vendor plus the single mutable workflow status.
//
// Order follows these invariants:
//   - Lines and Price are set at creation and have no setters
//   - Status only moves along the edges of the Status transition table
//   - At most one agent is referenced; it is set only by AssignAgent
//   - The confirmation code exists only while OutForDelivery and is cleared on confirmation
//   - After a terminal status only the rating flag (and a late payment record) may change
//
// Every mutation appends at most one StatusChanged event; PullEvents drains them.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	vendor     VendorRef
	agent      *AgentRef
	lines      []LineItem
	price      Price
	target     DeliveryTarget
	payment    Payment
	status     Status
	code       ConfirmationCode
	createdAt  time.Time
	updatedAt  time.Time
	version    int64
	rated      bool

	events []StatusChanged

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder places an order in Pending status at version 1.
//
// Parameters:
//   - id: unique identifier of the new order
//   - customerID: the customer placing the order
//   - vendor: the vendor fulfilling it, with its display name
//   - lines: non-empty cart lines with prices frozen at checkout
//   - price: the pricing engine's quote for exactly these lines
//   - target: delivery address and contact phone
//   - payment: payment metadata
//   - now: creation time
//
// Returns a validation error when any part is invalid or when price.Subtotal() differs
// from the sum of the line totals.
func NewOrder(
	id, customerID kernel.UUID,
	vendor VendorRef,
	lines []LineItem,
	price Price,
	target DeliveryTarget,
	payment Payment,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID),
		o.setVendor(vendor),
		o.setLines(lines, price),
		o.setTarget(target),
		o.setPayment(payment),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage and checks the cross-field invariants
// that a stored row must still satisfy.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		status:        s.Status,
		code:          s.ConfirmationCode,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		version:       s.Version,
		rated:         s.Rated,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomer(s.CustomerID),
		o.setVendor(s.Vendor),
		o.setLines(s.Lines, s.Price),
		o.setTarget(s.Target),
		o.setPayment(s.Payment),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if s.Version < 1 {
		return nil, errs.NewValueIsOutOfRangeError("version", s.Version, 1, "+inf")
	}

	needsAgent := s.Status == OutForDelivery || s.Status == Delivered
	if needsAgent && s.Agent == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("agent", fmt.Errorf("status %s requires an agent", s.Status))
	}
	if s.Agent != nil {
		if err := s.Agent.Validate(); err != nil {
			return nil, err
		}
		a := *s.Agent
		o.agent = &a
	}

	if (s.Status == OutForDelivery) != (s.ConfirmationCode != "") {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"confirmation code", fmt.Errorf("a code exists only while %s", OutForDelivery))
	}
	if s.ConfirmationCode != "" {
		if _, err := NewConfirmationCode(string(s.ConfirmationCode)); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) Vendor() VendorRef {
	return o.vendor
}

// Agent returns a copy of the assigned agent reference, or nil.
func (o *Order) Agent() *AgentRef {
	if o.agent == nil {
		return nil
	}
	a := *o.agent
	return &a
}

// Lines returns a copy of the frozen cart lines.
func (o *Order) Lines() []LineItem {
	return slices.Clone(o.lines)
}

func (o *Order) Price() Price {
	return o.price
}

func (o *Order) Target() DeliveryTarget {
	return o.target
}

func (o *Order) Payment() Payment {
	return o.payment
}

func (o *Order) Status() Status {
	return o.status
}

// ConfirmationCode is empty unless the order is out for delivery.
func (o *Order) ConfirmationCode() ConfirmationCode {
	return o.code
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version is the guarded-update token. Storage bumps it on every successful write.
func (o *Order) Version() int64 {
	return o.version
}

// SyncVersion is called by the repository after a guarded write succeeded.
func (o *Order) SyncVersion(version int64) {
	o.version = version
}

func (o *Order) IsRated() bool {
	return o.rated
}

// IsAwaitingVendor is true while the order is pending. The vendor's incoming-order alert
// is derived from it.
func (o *Order) IsAwaitingVendor() bool {
	return o.status == Pending
}

// Authorize checks that actor is a party to this order: the customer who placed it, the
// vendor fulfilling it, the assigned agent, an admin or the system.
func (o *Order) Authorize(actor kernel.Actor, action string) error {
	switch actor.Role {
	case kernel.RoleAdmin, kernel.RoleSystem:
		return nil
	case kernel.RoleCustomer:
		if actor.ID.IsEqual(o.customerID) {
			return nil
		}
	case kernel.RoleVendor:
		if actor.ID.IsEqual(o.vendor.ID) {
			return nil
		}
	case kernel.RoleDeliveryAgent:
		if o.agent != nil && actor.ID.IsEqual(o.agent.ID) {
			return nil
		}
	case kernel.RoleUnknown:
	}
	return errs.NewUnauthorizedError(actor.Role, action+" on order "+o.id.String())
}

// Transition moves the order to status `to` on behalf of actor.
//
// Business rules:
//   - The edge must exist in the transition table (InvalidTransition), the order must not be
//     terminal (InvalidState) and actor.Role must be allowed on the edge (Unauthorized)
//   - The actor must be a party to the order (Unauthorized)
//   - Edges into OutForDelivery and Delivered belong to the coordinator; use AssignAgent
//     and ConfirmDelivery instead
//
// On success exactly one StatusChanged event is recorded.
func (o *Order) Transition(to Status, actor kernel.Actor, now time.Time) error {
	if to == OutForDelivery || to == Delivered {
		if _, err := o.status.Transition(to, actor.Role); err != nil {
			return err
		}
		return errs.NewUnauthorizedError(actor.Role, "move an order to "+to.String()+" without the coordinator")
	}

	next, err := o.status.Transition(to, actor.Role)
	if err != nil {
		return err
	}
	if err := o.Authorize(actor, "move to "+to.String()); err != nil {
		return err
	}

	o.apply(next, actor.Role, now)
	return nil
}

// AssignAgent binds agent to the order, stores the confirmation code and moves the
// order out for delivery. Reassignment overwrites the previous reference.
//
// Returns InvalidStateError unless the order is Accepted or Preparing.
func (o *Order) AssignAgent(agent AgentRef, code ConfirmationCode, now time.Time) error {
	if o.status != Accepted && o.status != Preparing {
		return errs.NewInvalidStateError("assign an agent", o.status)
	}
	if err := agent.Validate(); err != nil {
		return err
	}
	if _, err := NewConfirmationCode(string(code)); err != nil {
		return err
	}

	next, err := o.status.Transition(OutForDelivery, kernel.RoleSystem)
	if err != nil {
		return err
	}

	o.agent = &agent
	o.code = code
	o.apply(next, kernel.RoleSystem, now)
	return nil
}

// ConfirmDelivery checks the submitted code and completes the delivery.
//
// Non-digits are stripped from submitted before an exact comparison. A mismatch returns
// errs.ErrOtpMismatch and leaves the order untouched. On a match the order becomes Delivered,
// the code is cleared for good and a cash payment is marked completed.
//
// Returns InvalidStateError when the order is not awaiting confirmation.
func (o *Order) ConfirmDelivery(submitted string, now time.Time) error {
	if o.status != OutForDelivery || o.code == "" {
		return errs.NewInvalidStateError("confirm delivery", o.status)
	}
	if !o.code.Matches(submitted) {
		return errs.ErrOtpMismatch
	}

	next, err := o.status.Transition(Delivered, kernel.RoleSystem)
	if err != nil {
		return err
	}

	o.code = ""
	if o.payment.Method() == PaymentCash {
		o.payment = o.payment.complete("")
	}
	o.apply(next, kernel.RoleSystem, now)
	return nil
}

// Rate sets the one-time rating flag after delivery.
func (o *Order) Rate(now time.Time) error {
	if o.status != Delivered {
		return errs.NewInvalidStateError("rate", o.status)
	}
	if o.rated {
		return ErrAlreadyRated
	}
	o.rated = true
	o.updatedAt = now.UTC()
	return nil
}

// CompletePayment records a claimed payment, optionally with an external reference.
func (o *Order) CompletePayment(reference string, now time.Time) error {
	if o.status == Cancelled {
		return errs.NewInvalidStateError("record a payment", o.status)
	}
	if o.payment.IsCompleted() {
		return ErrPaymentAlreadyCompleted
	}
	o.payment = o.payment.complete(reference)
	o.updatedAt = now.UTC()
	return nil
}

// PullEvents returns and clears the events recorded since the last call.
func (o *Order) PullEvents() []StatusChanged {
	events := o.events
	o.events = nil
	return events
}

// Snapshot returns a detached copy of the current state.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:               o.id,
		CustomerID:       o.customerID,
		Vendor:           o.vendor,
		Agent:            o.agent,
		Lines:            o.lines,
		Price:            o.price,
		Target:           o.target,
		Payment:          o.payment,
		Status:           o.status,
		ConfirmationCode: o.code,
		CreatedAt:        o.createdAt,
		UpdatedAt:        o.updatedAt,
		Version:          o.version,
		Rated:            o.rated,
	}.clone()
}

func (o *Order) apply(next Status, by kernel.Role, now time.Time) {
	at := now.UTC()
	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		CustomerID: o.customerID,
		VendorID:   o.vendor.ID,
		From:       o.status,
		To:         next,
		By:         by,
		At:         at,
	})
	o.status = next
	o.updatedAt = at
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setVendor(vendor VendorRef) error {
	if err := vendor.Validate(); err != nil {
		return err
	}
	o.vendor = vendor
	return nil
}

// setLines freezes the cart lines together with the price computed for them.
func (o *Order) setLines(lines []LineItem, price Price) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	if err := price.Validate(); err != nil {
		return err
	}

	subtotal := kernel.ZeroMoney()
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
		subtotal = subtotal.Add(l.Total())
	}
	if !subtotal.IsEqual(price.Subtotal()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("subtotal %s does not match lines total %s", price.Subtotal(), subtotal),
		)
	}

	o.lines = slices.Clone(lines)
	o.price = price
	return nil
}

func (o *Order) setTarget(target DeliveryTarget) error {
	if err := target.Validate(); err != nil {
		return err
	}
	o.target = target
	return nil
}

func (o *Order) setPayment(payment Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}
