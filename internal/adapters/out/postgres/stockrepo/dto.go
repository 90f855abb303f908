// Package stockrepo is the GORM inventory ledger. Read-modify-write goes
// through GetForUpdate, which holds the row lock until the transaction ends.
package stockrepo

import (
	"time"

	"retailops/internal/core/domain/model/inventory"
	"retailops/internal/core/domain/model/kernel"
)

type StockItemDTO struct {
	Item      string    `gorm:"primaryKey"`
	Quantity  int       `gorm:"not null;check:quantity >= 0"`
	Version   int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (StockItemDTO) TableName() string {
	return "stock_items"
}

func fromDomain(s *inventory.StockItem) StockItemDTO {
	return StockItemDTO{Item: s.Item().String(), Quantity: s.Quantity(), Version: s.Version()}
}

func toDomain(dto StockItemDTO) (*inventory.StockItem, error) {
	item, err := kernel.NewItemName(dto.Item)
	if err != nil {
		return nil, err
	}
	return inventory.RestoreStockItem(item, dto.Quantity, dto.Version)
}
