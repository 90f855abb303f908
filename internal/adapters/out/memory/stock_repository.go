package memory

import (
	"context"
	"fmt"
	"sort"

	"retailops/internal/core/domain/model/inventory"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/pkg/errs"
)

type stockRepository struct {
	uow *UnitOfWork
}

func stockKey(item string) string { return "stock:" + item }

func (r *stockRepository) GetForUpdate(_ context.Context, item kernel.ItemName) (*inventory.StockItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	key := item.String()
	r.uow.lockRow(stockKey(key))

	row, ok := r.lookup(r.uow.tx, key)
	if !ok {
		err := r.uow.write(func(t *tx) error {
			t.stock[key] = stockRow{}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return inventory.RestoreStockItem(item, row.quantity, row.version)
}

func (r *stockRepository) Save(_ context.Context, stock *inventory.StockItem) error {
	if err := stock.Validate(); err != nil {
		return err
	}
	key := stock.Item().String()
	return r.uow.write(func(t *tx) error {
		current, ok := r.lookup(t, key)
		if !ok || current.version >= stock.Version() {
			return errs.NewPersistenceError("update stock item",
				fmt.Errorf("%w: %s is missing or already at version %d", errs.ErrStaleVersion, key, stock.Version()))
		}
		t.stock[key] = stockRow{quantity: stock.Quantity(), version: stock.Version()}
		return nil
	})
}

func (r *stockRepository) Get(_ context.Context, item kernel.ItemName) (*inventory.StockItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	row, ok := r.lookup(r.uow.tx, item.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("item", item.String())
	}
	return inventory.RestoreStockItem(item, row.quantity, row.version)
}

func (r *stockRepository) List(_ context.Context) ([]*inventory.StockItem, error) {
	return r.list(func(int) bool { return true })
}

func (r *stockRepository) LowStock(_ context.Context, threshold int) ([]*inventory.StockItem, error) {
	return r.list(func(quantity int) bool { return quantity <= threshold })
}

func (r *stockRepository) list(keep func(quantity int) bool) ([]*inventory.StockItem, error) {
	s := r.uow.store
	s.mu.RLock()
	merged := make(map[string]stockRow, len(s.stock))
	for item, row := range s.stock {
		merged[item] = row
	}
	s.mu.RUnlock()

	if t := r.uow.tx; t != nil {
		for item, row := range t.stock {
			merged[item] = row
		}
	}

	names := make([]string, 0, len(merged))
	for item, row := range merged {
		if keep(row.quantity) {
			names = append(names, item)
		}
	}
	sort.Strings(names)

	out := make([]*inventory.StockItem, 0, len(names))
	for _, name := range names {
		stock, err := toStockItem(name, merged[name])
		if err != nil {
			return nil, err
		}
		out = append(out, stock)
	}
	return out, nil
}

func (r *stockRepository) lookup(t *tx, item string) (stockRow, bool) {
	if t != nil {
		if row, ok := t.stock[item]; ok {
			return row, true
		}
	}
	s := r.uow.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.stock[item]
	return row, ok
}
