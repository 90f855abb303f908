// Package ports defines the contracts between the application core and its
// adapters: per-entity repositories bound to a unit of work, the stock cache
// and the password hasher.
package ports

import (
	"context"

	"retailops/internal/core/domain/model/audit"
	"retailops/internal/core/domain/model/delivery"
	"retailops/internal/core/domain/model/inventory"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/core/domain/model/purchase"
	"retailops/internal/core/domain/model/user"
)

// PurchaseOrderRepository persists purchase orders. Orders are never deleted.
type PurchaseOrderRepository interface {
	Add(ctx context.Context, order *purchase.Order) error
	Update(ctx context.Context, order *purchase.Order) error

	// Get returns errs.ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id kernel.UUID) (*purchase.Order, error)

	// GetForUpdate is Get plus a row lock held until the unit of work ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*purchase.Order, error)

	// List returns every order, newest first.
	List(ctx context.Context) ([]*purchase.Order, error)

	// CountByStatus returns the number of orders per status. Missing keys are zero.
	CountByStatus(ctx context.Context) (map[purchase.Status]int, error)
}

// DeliveryRepository persists deliveries.
type DeliveryRepository interface {
	Add(ctx context.Context, d *delivery.Delivery) error
	Update(ctx context.Context, d *delivery.Delivery) error
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// List returns every delivery, newest first.
	List(ctx context.Context) ([]*delivery.Delivery, error)
	CountByStatus(ctx context.Context) (map[delivery.Status]int, error)
}

// StockRepository is the inventory ledger. It is the only store written by two
// components, so every read-modify-write goes through GetForUpdate.
type StockRepository interface {
	// GetForUpdate returns the row for item, creating it at zero when absent,
	// and holds a per-item lock until the unit of work commits or rolls back.
	GetForUpdate(ctx context.Context, item kernel.ItemName) (*inventory.StockItem, error)

	// Save writes a row previously returned by GetForUpdate.
	Save(ctx context.Context, stock *inventory.StockItem) error

	// Get returns errs.ObjectNotFoundError for an item never stocked.
	Get(ctx context.Context, item kernel.ItemName) (*inventory.StockItem, error)

	// List returns every row ordered by item name.
	List(ctx context.Context) ([]*inventory.StockItem, error)

	// LowStock returns rows with quantity <= threshold ordered by item name.
	LowStock(ctx context.Context, threshold int) ([]*inventory.StockItem, error)
}

// AuditLogRepository is the append-only audit log.
type AuditLogRepository interface {
	// Append stores entry. Inside a transaction a failed append must not
	// poison the surrounding work; the caller decides whether to continue.
	Append(ctx context.Context, entry audit.Entry) error

	// List returns at most limit entries, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]audit.Entry, error)
}

// UserRepository stores operator accounts keyed by lower-cased username.
type UserRepository interface {
	// Add returns a validation error when the username is taken.
	Add(ctx context.Context, u *user.User) error
	Get(ctx context.Context, username string) (*user.User, error)
	Delete(ctx context.Context, username string) error

	// List returns every account ordered by username.
	List(ctx context.Context) ([]*user.User, error)
	Count(ctx context.Context) (int, error)
}
