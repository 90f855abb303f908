package queries

import (
	"errors"

	"retailops/internal/pkg/guard"
)

var (
	ErrGetDashboardQueryIsNotConstructed = errors.New(
		"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
	)
	ErrGetReportQueryIsNotConstructed = errors.New(
		"GetReportQuery must be created via NewGetReportQuery constructor",
	)
)

// GetDashboardQuery counts records for the landing page.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

type DashboardResponse struct {
	Purchases  int
	Deliveries int
	StockItems int
	LowStock   int
}

// GetReportQuery summarizes purchases and deliveries by status.
type GetReportQuery struct {
	guard guard.ConstructorGuard
}

func NewGetReportQuery() GetReportQuery {
	return GetReportQuery{guard: guard.NewConstructorGuard()}
}

func (q GetReportQuery) Validate() error {
	return q.guard.Validate(ErrGetReportQueryIsNotConstructed)
}

// ReportResponse groups Rejected and Cancelled purchases under Other.
type ReportResponse struct {
	PurchasesApproved   int
	PurchasesPending    int
	PurchasesOther      int
	DeliveriesScheduled int
	DeliveriesInTransit int
	DeliveriesDelivered int
}
