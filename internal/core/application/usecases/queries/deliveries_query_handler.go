package queries

import (
	"context"

	"retailops/internal/core/ports"
)

type GetDeliveriesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetDeliveriesQueryHandler(uowFactory ports.UnitOfWorkFactory) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{uowFactory: uowFactory}
}

func (h GetDeliveriesQueryHandler) Handle(ctx context.Context, query GetDeliveriesQuery) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries, err := h.uowFactory.Create().DeliveryRepository().List(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]DeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		response = append(response, deliveryResponse(d))
	}
	return response, nil
}

func (h GetDeliveriesQueryHandler) HandleOne(ctx context.Context, query GetDeliveryQuery) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	d, err := h.uowFactory.Create().DeliveryRepository().Get(ctx, query.ID())
	if err != nil {
		return DeliveryResponse{}, err
	}
	return deliveryResponse(d), nil
}
