package queries

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders matching a filter, newest first.
type ListOrdersQuery struct {
	filter order.Filter
	limit  int
	actor  kernel.Actor

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates the query. A zero limit means DefaultListLimit.
func NewListOrdersQuery(filter order.Filter, limit int, actor kernel.Actor) (ListOrdersQuery, error) {
	var limitErr error
	if limit < 0 || limit > MaxListLimit {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 0, MaxListLimit)
	}
	var statusErr error
	for _, s := range filter.Statuses {
		if s == order.Unknown {
			statusErr = errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("unknown status in filter"))
		}
	}
	if err := errors.Join(actor.Validate(), limitErr, statusErr); err != nil {
		return ListOrdersQuery{}, err
	}
	if limit == 0 {
		limit = DefaultListLimit
	}

	return ListOrdersQuery{filter: filter, limit: limit, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() order.Filter {
	return q.filter
}

func (q ListOrdersQuery) Limit() int {
	return q.limit
}

func (q ListOrdersQuery) Actor() kernel.Actor {
	return q.actor
}
