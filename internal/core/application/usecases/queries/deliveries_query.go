package queries

import (
	"errors"
	"time"

	"retailops/internal/core/domain/model/delivery"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/pkg/guard"
)

var (
	ErrGetDeliveriesQueryIsNotConstructed = errors.New(
		"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
	)
	ErrGetDeliveryQueryIsNotConstructed = errors.New(
		"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
	)
)

// GetDeliveriesQuery lists every delivery, newest first.
type GetDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDeliveriesQuery() GetDeliveriesQuery {
	return GetDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

type GetDeliveryQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetDeliveryQuery(id kernel.UUID) (GetDeliveryQuery, error) {
	if err := id.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}
	return GetDeliveryQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

func (q GetDeliveryQuery) ID() kernel.UUID {
	return q.id
}

type DeliveryResponse struct {
	ID        kernel.UUID
	Customer  string
	Item      string
	Driver    string
	Status    delivery.Status
	CreatedAt time.Time
}

func deliveryResponse(d *delivery.Delivery) DeliveryResponse {
	return DeliveryResponse{
		ID:        d.ID(),
		Customer:  d.Customer().String(),
		Item:      d.Item().String(),
		Driver:    d.Driver().String(),
		Status:    d.Status(),
		CreatedAt: d.CreatedAt(),
	}
}
