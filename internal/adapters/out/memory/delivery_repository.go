package memory

import (
	"context"
	"fmt"
	"sort"

	"retailops/internal/core/domain/model/delivery"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/pkg/errs"
)

type deliveryRepository struct {
	uow *UnitOfWork
}

func deliveryKey(id string) string { return "delivery:" + id }

func (r *deliveryRepository) Add(_ context.Context, d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}
	row := fromDelivery(d)
	return r.uow.write(func(t *tx) error {
		t.lock(deliveryKey(row.id))
		if _, ok := r.lookup(t, row.id); ok {
			return errs.NewPersistenceError("add delivery", fmt.Errorf("duplicate id %s", row.id))
		}
		t.deliveries[row.id] = row
		return nil
	})
}

func (r *deliveryRepository) Update(_ context.Context, d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}
	row := fromDelivery(d)
	return r.uow.write(func(t *tx) error {
		if _, ok := r.lookup(t, row.id); !ok {
			return errs.NewObjectNotFoundError("delivery", row.id)
		}
		t.deliveries[row.id] = row
		return nil
	})
}

func (r *deliveryRepository) Get(_ context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	row, ok := r.lookup(r.uow.tx, id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("delivery", id.String())
	}
	return toDelivery(row)
}

func (r *deliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	r.uow.lockRow(deliveryKey(id.String()))
	return r.Get(ctx, id)
}

func (r *deliveryRepository) List(_ context.Context) ([]*delivery.Delivery, error) {
	rows := r.rows()
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].createdAt.Equal(rows[j].createdAt) {
			return rows[i].createdAt.After(rows[j].createdAt)
		}
		return newerSeq(rows[i].seq, rows[j].seq)
	})

	out := make([]*delivery.Delivery, 0, len(rows))
	for _, row := range rows {
		d, err := toDelivery(row)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *deliveryRepository) CountByStatus(_ context.Context) (map[delivery.Status]int, error) {
	counts := map[delivery.Status]int{}
	for _, row := range r.rows() {
		counts[delivery.Status(row.status)]++
	}
	return counts, nil
}

func (r *deliveryRepository) lookup(t *tx, id string) (deliveryRow, bool) {
	if t != nil {
		if row, ok := t.deliveries[id]; ok {
			return row, true
		}
	}
	s := r.uow.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.deliveries[id]
	return row, ok
}

func (r *deliveryRepository) rows() []deliveryRow {
	s := r.uow.store
	s.mu.RLock()
	merged := make(map[string]deliveryRow, len(s.deliveries))
	for id, row := range s.deliveries {
		merged[id] = row
	}
	s.mu.RUnlock()

	if t := r.uow.tx; t != nil {
		for id, row := range t.deliveries {
			if committed, ok := merged[id]; ok {
				row.seq = committed.seq
			}
			merged[id] = row
		}
	}

	out := make([]deliveryRow, 0, len(merged))
	for _, row := range merged {
		out = append(out, row)
	}
	return out
}
