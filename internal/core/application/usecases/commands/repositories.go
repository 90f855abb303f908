// Package commands contains the mutating use cases. Every handler follows the
// same shape: check the constructor guard, authorize the actor, open a unit of
// work, mutate one tracker (cascading into the ledger on approval), append the
// audit entries the aggregates emitted, and commit.
package commands

import (
	"context"

	"retailops/internal/core/ports"
)

// Unit of work views narrowed to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	PurchaseOrderRepoFactory interface {
		PurchaseOrderRepository() ports.PurchaseOrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	AuditLogRepoFactory interface {
		AuditLogRepository() ports.AuditLogRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// PurchaseUoW covers purchase creation and every transition. Approval
	// writes the ledger in the same transaction.
	PurchaseUoW interface {
		TxManager
		PurchaseOrderRepoFactory
		StockRepoFactory
		AuditLogRepoFactory
	}

	PurchaseUoWFactory interface {
		Create() PurchaseUoW
	}

	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		AuditLogRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	StockUoW interface {
		TxManager
		StockRepoFactory
		AuditLogRepoFactory
	}

	StockUoWFactory interface {
		Create() StockUoW
	}

	UserUoW interface {
		TxManager
		UserRepoFactory
		AuditLogRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// SeedUoW writes every table when loading demo data.
	SeedUoW interface {
		TxManager
		PurchaseOrderRepoFactory
		StockRepoFactory
		AuditLogRepoFactory
		UserRepoFactory
	}

	SeedUoWFactory interface {
		Create() SeedUoW
	}
)
