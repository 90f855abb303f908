package memory

import (
	"context"
	"fmt"
	"sort"

	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/core/domain/model/purchase"
	"retailops/internal/pkg/errs"
)

type purchaseOrderRepository struct {
	uow *UnitOfWork
}

func orderKey(id string) string { return "order:" + id }

func (r *purchaseOrderRepository) Add(_ context.Context, order *purchase.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}
	row := fromOrder(order)
	return r.uow.write(func(t *tx) error {
		t.lock(orderKey(row.id))
		if _, ok := r.lookup(t, row.id); ok {
			return errs.NewPersistenceError("add purchase order", fmt.Errorf("duplicate id %s", row.id))
		}
		t.orders[row.id] = row
		return nil
	})
}

func (r *purchaseOrderRepository) Update(_ context.Context, order *purchase.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}
	row := fromOrder(order)
	return r.uow.write(func(t *tx) error {
		if _, ok := r.lookup(t, row.id); !ok {
			return errs.NewObjectNotFoundError("purchase order", row.id)
		}
		t.orders[row.id] = row
		return nil
	})
}

func (r *purchaseOrderRepository) Get(_ context.Context, id kernel.UUID) (*purchase.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	row, ok := r.lookup(r.uow.tx, id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("purchase order", id.String())
	}
	return toOrder(row)
}

func (r *purchaseOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*purchase.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	r.uow.lockRow(orderKey(id.String()))
	return r.Get(ctx, id)
}

func (r *purchaseOrderRepository) List(_ context.Context) ([]*purchase.Order, error) {
	rows := r.rows()
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].createdAt.Equal(rows[j].createdAt) {
			return rows[i].createdAt.After(rows[j].createdAt)
		}
		return newerSeq(rows[i].seq, rows[j].seq)
	})

	orders := make([]*purchase.Order, 0, len(rows))
	for _, row := range rows {
		o, err := toOrder(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *purchaseOrderRepository) CountByStatus(_ context.Context) (map[purchase.Status]int, error) {
	counts := map[purchase.Status]int{}
	for _, row := range r.rows() {
		counts[purchase.Status(row.status)]++
	}
	return counts, nil
}

func (r *purchaseOrderRepository) lookup(t *tx, id string) (orderRow, bool) {
	if t != nil {
		if row, ok := t.orders[id]; ok {
			return row, true
		}
	}
	s := r.uow.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.orders[id]
	return row, ok
}

// rows merges committed rows with the active transaction's staged rows.
func (r *purchaseOrderRepository) rows() []orderRow {
	s := r.uow.store
	s.mu.RLock()
	merged := make(map[string]orderRow, len(s.orders))
	for id, row := range s.orders {
		merged[id] = row
	}
	s.mu.RUnlock()

	if t := r.uow.tx; t != nil {
		for id, row := range t.orders {
			if committed, ok := merged[id]; ok {
				row.seq = committed.seq
			}
			merged[id] = row
		}
	}

	out := make([]orderRow, 0, len(merged))
	for _, row := range merged {
		out = append(out, row)
	}
	return out
}

// newerSeq orders staged rows (seq 0) before committed ones, then by
// descending insertion order.
func newerSeq(a, b int64) bool {
	if a == 0 || b == 0 {
		return a == 0 && b != 0
	}
	return a > b
}
