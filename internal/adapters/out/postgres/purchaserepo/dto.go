// Package purchaserepo persists purchase orders with GORM.
package purchaserepo

import (
	"time"

	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/core/domain/model/purchase"

	"github.com/google/uuid"
)

// PurchaseOrderDTO is one row of purchase_orders. Seq breaks created_at ties
// so listings stay newest first.
type PurchaseOrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int64     `gorm:"autoIncrement;not null;uniqueIndex"`
	Item      string    `gorm:"not null;index"`
	Quantity  int       `gorm:"not null"`
	Supplier  string    `gorm:"not null"`
	Status    int       `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (PurchaseOrderDTO) TableName() string {
	return "purchase_orders"
}

func fromDomain(o *purchase.Order) PurchaseOrderDTO {
	return PurchaseOrderDTO{
		ID:        o.ID().Bytes(),
		Item:      o.Item().String(),
		Quantity:  o.Quantity(),
		Supplier:  o.Supplier().String(),
		Status:    int(o.Status()),
		CreatedAt: o.CreatedAt(),
	}
}

func toDomain(dto PurchaseOrderDTO) (*purchase.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	item, err := kernel.NewItemName(dto.Item)
	if err != nil {
		return nil, err
	}

	supplier, err := kernel.NewName("supplier", dto.Supplier)
	if err != nil {
		return nil, err
	}

	return purchase.RestoreOrder(id, item, dto.Quantity, supplier, purchase.Status(dto.Status), dto.CreatedAt)
}
