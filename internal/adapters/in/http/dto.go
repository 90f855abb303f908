package http

import (
	"time"

	"retailops/internal/core/application/usecases/queries"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type purchaseRequest struct {
	Item     string `json:"item"     validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
	Supplier string `json:"supplier" validate:"required"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

type deliveryRequest struct {
	Customer string `json:"customer" validate:"required"`
	Item     string `json:"item"     validate:"required"`
	Driver   string `json:"driver"   validate:"required"`
}

type stockAdjustmentRequest struct {
	Item   string `json:"item"   validate:"required"`
	Amount int    `json:"amount"`
}

type userRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
}

type actorResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type purchaseResponse struct {
	ID        string    `json:"id"`
	Item      string    `json:"item"`
	Quantity  int       `json:"quantity"`
	Supplier  string    `json:"supplier"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func toPurchaseResponse(o queries.PurchaseOrderResponse) purchaseResponse {
	return purchaseResponse{
		ID:        o.ID.String(),
		Item:      o.Item,
		Quantity:  o.Quantity,
		Supplier:  o.Supplier,
		Status:    o.Status.String(),
		CreatedAt: o.CreatedAt,
	}
}

type deliveryResponse struct {
	ID        string    `json:"id"`
	Customer  string    `json:"customer"`
	Item      string    `json:"item"`
	Driver    string    `json:"driver"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func toDeliveryResponse(d queries.DeliveryResponse) deliveryResponse {
	return deliveryResponse{
		ID:        d.ID.String(),
		Customer:  d.Customer,
		Item:      d.Item,
		Driver:    d.Driver,
		Status:    d.Status.String(),
		CreatedAt: d.CreatedAt,
	}
}

type stockItemResponse struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Low      bool   `json:"low"`
}

func toStockItemResponse(s queries.StockItemResponse) stockItemResponse {
	return stockItemResponse{Item: s.Item, Quantity: s.Quantity, Low: s.Low}
}

type auditEntryResponse struct {
	RecordedAt time.Time `json:"recordedAt"`
	Message    string    `json:"message"`
	Line       string    `json:"line"`
}

type dashboardResponse struct {
	Purchases  int `json:"purchases"`
	Deliveries int `json:"deliveries"`
	StockItems int `json:"stockItems"`
	LowStock   int `json:"lowStock"`
}

type reportResponse struct {
	Purchases  purchaseReport `json:"purchases"`
	Deliveries deliveryReport `json:"deliveries"`
}

type purchaseReport struct {
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Other    int `json:"other"`
}

type deliveryReport struct {
	Scheduled int `json:"scheduled"`
	InTransit int `json:"inTransit"`
	Delivered int `json:"delivered"`
}

type userResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}
