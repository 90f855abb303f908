// Package deliveryrepo persists customer deliveries with GORM.
package deliveryrepo

import (
	"time"

	"retailops/internal/core/domain/model/delivery"
	"retailops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int64     `gorm:"autoIncrement;not null;uniqueIndex"`
	Customer  string    `gorm:"not null"`
	Item      string    `gorm:"not null"`
	Driver    string    `gorm:"not null"`
	Status    int       `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:        d.ID().Bytes(),
		Customer:  d.Customer().String(),
		Item:      d.Item().String(),
		Driver:    d.Driver().String(),
		Status:    int(d.Status()),
		CreatedAt: d.CreatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := kernel.NewName("customer", dto.Customer)
	if err != nil {
		return nil, err
	}

	item, err := kernel.NewItemName(dto.Item)
	if err != nil {
		return nil, err
	}

	driver, err := kernel.NewName("driver", dto.Driver)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, customer, item, driver, delivery.Status(dto.Status), dto.CreatedAt)
}
