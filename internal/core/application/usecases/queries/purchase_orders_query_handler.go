package queries

import (
	"context"

	"retailops/internal/core/ports"
)

// GetPurchaseOrdersQueryHandler serves both purchase order queries.
type GetPurchaseOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetPurchaseOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) GetPurchaseOrdersQueryHandler {
	return GetPurchaseOrdersQueryHandler{uowFactory: uowFactory}
}

func (h GetPurchaseOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPurchaseOrdersQuery,
) ([]PurchaseOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.uowFactory.Create().PurchaseOrderRepository().List(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, purchaseOrderResponse(o))
	}
	return response, nil
}

// HandleOne returns errs.ObjectNotFoundError for an unknown id.
func (h GetPurchaseOrdersQueryHandler) HandleOne(
	ctx context.Context,
	query GetPurchaseOrderQuery,
) (PurchaseOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return PurchaseOrderResponse{}, err
	}

	o, err := h.uowFactory.Create().PurchaseOrderRepository().Get(ctx, query.ID())
	if err != nil {
		return PurchaseOrderResponse{}, err
	}
	return purchaseOrderResponse(o), nil
}
