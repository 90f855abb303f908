// Package queries contains the read operations. Handlers read committed state
// through a unit of work that is never begun, so they take no row locks and
// work against either storage driver.
package queries

import (
	"errors"
	"time"

	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/core/domain/model/purchase"
	"retailops/internal/pkg/guard"
)

var (
	ErrGetPurchaseOrdersQueryIsNotConstructed = errors.New(
		"GetPurchaseOrdersQuery must be created via NewGetPurchaseOrdersQuery constructor",
	)
	ErrGetPurchaseOrderQueryIsNotConstructed = errors.New(
		"GetPurchaseOrderQuery must be created via NewGetPurchaseOrderQuery constructor",
	)
)

// GetPurchaseOrdersQuery lists every purchase order, newest first.
//
//	orders, err := handler.Handle(ctx, queries.NewGetPurchaseOrdersQuery())
type GetPurchaseOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPurchaseOrdersQuery() GetPurchaseOrdersQuery {
	return GetPurchaseOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPurchaseOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrdersQueryIsNotConstructed)
}

// GetPurchaseOrderQuery fetches one purchase order by id.
type GetPurchaseOrderQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetPurchaseOrderQuery(id kernel.UUID) (GetPurchaseOrderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetPurchaseOrderQuery{}, err
	}
	return GetPurchaseOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPurchaseOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrderQueryIsNotConstructed)
}

func (q GetPurchaseOrderQuery) ID() kernel.UUID {
	return q.id
}

// PurchaseOrderResponse is the read model of a purchase order.
type PurchaseOrderResponse struct {
	ID        kernel.UUID
	Item      string
	Quantity  int
	Supplier  string
	Status    purchase.Status
	CreatedAt time.Time
}

func purchaseOrderResponse(o *purchase.Order) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:        o.ID(),
		Item:      o.Item().String(),
		Quantity:  o.Quantity(),
		Supplier:  o.Supplier().String(),
		Status:    o.Status(),
		CreatedAt: o.CreatedAt(),
	}
}
