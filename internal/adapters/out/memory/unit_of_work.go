package memory

import (
	"context"
	"errors"

	"retailops/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback outside Begin.
var ErrNoTransaction = errors.New("no active transaction")

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes between Begin and Commit. Repositories used
// outside Begin read committed state and write through immediately.
type UnitOfWork struct {
	store *Store
	tx    *tx
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.tx != nil {
		return nil
	}
	u.tx = newTx(u.store)
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	u.tx.commit()
	u.tx = nil
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	u.tx.release()
	u.tx = nil
	return nil
}

func (u *UnitOfWork) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	return &purchaseOrderRepository{uow: u}
}

func (u *UnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return &deliveryRepository{uow: u}
}

func (u *UnitOfWork) StockRepository() ports.StockRepository {
	return &stockRepository{uow: u}
}

func (u *UnitOfWork) AuditLogRepository() ports.AuditLogRepository {
	return &auditLogRepository{uow: u}
}

func (u *UnitOfWork) UserRepository() ports.UserRepository {
	return &userRepository{uow: u}
}

// write runs fn inside the active transaction, or inside a one-shot
// transaction committed immediately when none is active.
func (u *UnitOfWork) write(fn func(t *tx) error) error {
	if u.tx != nil {
		return fn(u.tx)
	}
	t := newTx(u.store)
	if err := fn(t); err != nil {
		t.release()
		return err
	}
	t.commit()
	return nil
}

// lockRow takes a row lock when a transaction is active.
func (u *UnitOfWork) lockRow(key string) {
	if u.tx != nil {
		u.tx.lock(key)
	}
}
