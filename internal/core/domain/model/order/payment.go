package order

import (
	"fmt"
	"strings"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

// PaymentMethod is how the customer pays. Payment is recorded as claimed, never verified.
type PaymentMethod int

const (
	PaymentMethodUnknown PaymentMethod = iota
	PaymentCash
	PaymentPrepaid
)

func (m PaymentMethod) String() string {
	switch m {
	case PaymentCash:
		return "cash"
	case PaymentPrepaid:
		return "prepaid"
	default:
		return "unknown"
	}
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "cash":
		return PaymentCash, nil
	case "prepaid":
		return PaymentPrepaid, nil
	default:
		return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
			"payment method", fmt.Errorf("%q is not a valid payment method", s))
	}
}

// PaymentStatus is independent of the order status. Its strings are persisted.
type PaymentStatus int

const (
	PaymentStatusUnknown PaymentStatus = iota
	PaymentPending
	PaymentCompleted
)

func (s PaymentStatus) String() string {
	switch s {
	case PaymentPending:
		return "pending"
	case PaymentCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch s {
	case "pending":
		return PaymentPending, nil
	case "completed":
		return PaymentCompleted, nil
	default:
		return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"payment status", fmt.Errorf("%q is not a valid payment status", s))
	}
}

// ErrPaymentIsNotConstructed is returned when a zero-value Payment is used.
var ErrPaymentIsNotConstructed = errs.NewValueIsRequiredError("payment must be created via NewPayment")

// Payment is the payment metadata of an order.
//
// A prepaid payment that arrives with an external reference is recorded as completed at
// checkout. Cash stays pending until the delivery is confirmed.
type Payment struct { //nolint:recvcheck //using for validation
	method    PaymentMethod
	status    PaymentStatus
	reference string
	guard     guard.ConstructorGuard
}

func NewPayment(method PaymentMethod, reference string) (Payment, error) {
	reference = strings.TrimSpace(reference)

	switch method {
	case PaymentCash:
		if reference != "" {
			return Payment{}, errs.NewValueIsInvalidErrorWithCause(
				"payment reference", fmt.Errorf("cash payments carry no reference"))
		}
		return RestorePayment(method, PaymentPending, "")
	case PaymentPrepaid:
		status := PaymentPending
		if reference != "" {
			status = PaymentCompleted
		}
		return RestorePayment(method, status, reference)
	default:
		return Payment{}, errs.NewValueIsInvalidError("payment method")
	}
}

// RestorePayment rebuilds a payment from storage.
func RestorePayment(method PaymentMethod, status PaymentStatus, reference string) (Payment, error) {
	if method != PaymentCash && method != PaymentPrepaid {
		return Payment{}, errs.NewValueIsInvalidError("payment method")
	}
	if status != PaymentPending && status != PaymentCompleted {
		return Payment{}, errs.NewValueIsInvalidError("payment status")
	}
	return Payment{
		method:    method,
		status:    status,
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (p Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

func (p Payment) Method() PaymentMethod {
	return p.method
}

func (p Payment) Status() PaymentStatus {
	return p.status
}

func (p Payment) Reference() string {
	return p.reference
}

func (p Payment) IsCompleted() bool {
	return p.status == PaymentCompleted
}

func (p Payment) complete(reference string) Payment {
	p.status = PaymentCompleted
	if reference != "" {
		p.reference = reference
	}
	return p
}
