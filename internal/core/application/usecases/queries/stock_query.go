package queries

import (
	"errors"

	"retailops/internal/core/domain/model/inventory"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/pkg/errs"
	"retailops/internal/pkg/guard"
)

var (
	ErrGetStockQueryIsNotConstructed = errors.New(
		"GetStockQuery must be created via NewGetStockQuery or NewGetLowStockQuery constructor",
	)
	ErrGetStockLevelQueryIsNotConstructed = errors.New(
		"GetStockLevelQuery must be created via NewGetStockLevelQuery constructor",
	)
)

// GetStockQuery lists ledger rows ordered by item name, optionally only those
// at or below a threshold.
type GetStockQuery struct {
	lowOnly   bool
	threshold int
	guard     guard.ConstructorGuard
}

func NewGetStockQuery() GetStockQuery {
	return GetStockQuery{guard: guard.NewConstructorGuard()}
}

// NewGetLowStockQuery lists items with quantity <= threshold.
func NewGetLowStockQuery(threshold int) (GetStockQuery, error) {
	if threshold < 0 {
		return GetStockQuery{}, errs.NewValueIsOutOfRangeError("threshold", threshold, 0, "max int")
	}
	return GetStockQuery{lowOnly: true, threshold: threshold, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStockQuery) Validate() error {
	return q.guard.Validate(ErrGetStockQueryIsNotConstructed)
}

func (q GetStockQuery) LowOnly() bool {
	return q.lowOnly
}

func (q GetStockQuery) Threshold() int {
	return q.threshold
}

// GetStockLevelQuery reads one item's quantity, preferring the stock cache.
type GetStockLevelQuery struct {
	item  kernel.ItemName
	guard guard.ConstructorGuard
}

func NewGetStockLevelQuery(item string) (GetStockLevelQuery, error) {
	name, err := kernel.NewItemName(item)
	if err != nil {
		return GetStockLevelQuery{}, err
	}
	return GetStockLevelQuery{item: name, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStockLevelQuery) Validate() error {
	return q.guard.Validate(ErrGetStockLevelQueryIsNotConstructed)
}

func (q GetStockLevelQuery) Item() kernel.ItemName {
	return q.item
}

type StockItemResponse struct {
	Item     string
	Quantity int
	Low      bool

	// Version is the ledger row version. It is zero when the level was
	// served from the cache.
	Version int64
}

func stockItemResponse(s *inventory.StockItem) StockItemResponse {
	return StockItemResponse{
		Item:     s.Item().String(),
		Quantity: s.Quantity(),
		Low:      s.IsLow(inventory.DefaultLowStockThreshold),
		Version:  s.Version(),
	}
}
