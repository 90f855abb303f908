package queries

import (
	"context"

	"retailops/internal/core/domain/model/delivery"
	"retailops/internal/core/domain/model/inventory"
	"retailops/internal/core/domain/model/purchase"
	"retailops/internal/core/ports"
)

// GetDashboardQueryHandler serves the dashboard and report counters.
type GetDashboardQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetDashboardQueryHandler(uowFactory ports.UnitOfWorkFactory) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{uowFactory: uowFactory}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (DashboardResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardResponse{}, err
	}

	uow := h.uowFactory.Create()

	purchases, err := uow.PurchaseOrderRepository().CountByStatus(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	deliveries, err := uow.DeliveryRepository().CountByStatus(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	stock, err := uow.StockRepository().List(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	return DashboardResponse{
		Purchases:  sum(purchases),
		Deliveries: sum(deliveries),
		StockItems: len(stock),
		LowStock:   len(inventory.LowStock(stock, inventory.DefaultLowStockThreshold)),
	}, nil
}

func (h GetDashboardQueryHandler) HandleReport(ctx context.Context, query GetReportQuery) (ReportResponse, error) {
	if err := query.Validate(); err != nil {
		return ReportResponse{}, err
	}

	uow := h.uowFactory.Create()

	purchases, err := uow.PurchaseOrderRepository().CountByStatus(ctx)
	if err != nil {
		return ReportResponse{}, err
	}

	deliveries, err := uow.DeliveryRepository().CountByStatus(ctx)
	if err != nil {
		return ReportResponse{}, err
	}

	return ReportResponse{
		PurchasesApproved:   purchases[purchase.Approved],
		PurchasesPending:    purchases[purchase.Pending],
		PurchasesOther:      purchases[purchase.Rejected] + purchases[purchase.Cancelled],
		DeliveriesScheduled: deliveries[delivery.Scheduled],
		DeliveriesInTransit: deliveries[delivery.InTransit],
		DeliveriesDelivered: deliveries[delivery.Delivered],
	}, nil
}

func sum[K comparable](counts map[K]int) int {
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}
