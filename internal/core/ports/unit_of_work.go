package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary.
//
// Repositories obtained before Begin read committed state without locks, which
// is what queries use. After Begin they share one transaction. Commit and
// Rollback both end it; handlers defer Rollback and ignore its error.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	PurchaseOrderRepository() PurchaseOrderRepository
	DeliveryRepository() DeliveryRepository
	StockRepository() StockRepository
	AuditLogRepository() AuditLogRepository
	UserRepository() UserRepository
}
