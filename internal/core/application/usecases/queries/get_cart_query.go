package queries

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/cart"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

type GetCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCartQueryResponse is empty, with a zero VendorID, for a customer who has not
// added anything yet.
type GetCartQueryResponse struct {
	CustomerID kernel.UUID
	VendorID   kernel.UUID
	Lines      []cart.Line
}

type GetCartQueryHandler struct {
	carts ports.CartStore
}

func NewGetCartQueryHandler(carts ports.CartStore) GetCartQueryHandler {
	return GetCartQueryHandler{carts: carts}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	c, err := h.carts.Get(ctx, query.CustomerID())
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	return GetCartQueryResponse{
		CustomerID: c.CustomerID(),
		VendorID:   c.VendorID(),
		Lines:      c.Lines(),
	}, nil
}
