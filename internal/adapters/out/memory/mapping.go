package memory

import (
	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/audit"
	"retailops/internal/core/domain/model/delivery"
	"retailops/internal/core/domain/model/inventory"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/core/domain/model/purchase"
	"retailops/internal/core/domain/model/user"
)

func fromOrder(o *purchase.Order) orderRow {
	return orderRow{
		id:        o.ID().String(),
		item:      o.Item().String(),
		quantity:  o.Quantity(),
		supplier:  o.Supplier().String(),
		status:    int(o.Status()),
		createdAt: o.CreatedAt(),
	}
}

func toOrder(row orderRow) (*purchase.Order, error) {
	id, err := kernel.UUIDFromString(row.id)
	if err != nil {
		return nil, err
	}
	item, err := kernel.NewItemName(row.item)
	if err != nil {
		return nil, err
	}
	supplier, err := kernel.NewName("supplier", row.supplier)
	if err != nil {
		return nil, err
	}
	return purchase.RestoreOrder(id, item, row.quantity, supplier, purchase.Status(row.status), row.createdAt)
}

func fromDelivery(d *delivery.Delivery) deliveryRow {
	return deliveryRow{
		id:        d.ID().String(),
		customer:  d.Customer().String(),
		item:      d.Item().String(),
		driver:    d.Driver().String(),
		status:    int(d.Status()),
		createdAt: d.CreatedAt(),
	}
}

func toDelivery(row deliveryRow) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromString(row.id)
	if err != nil {
		return nil, err
	}
	customer, err := kernel.NewName("customer", row.customer)
	if err != nil {
		return nil, err
	}
	item, err := kernel.NewItemName(row.item)
	if err != nil {
		return nil, err
	}
	driver, err := kernel.NewName("driver", row.driver)
	if err != nil {
		return nil, err
	}
	return delivery.RestoreDelivery(id, customer, item, driver, delivery.Status(row.status), row.createdAt)
}

func toStockItem(item string, row stockRow) (*inventory.StockItem, error) {
	name, err := kernel.NewItemName(item)
	if err != nil {
		return nil, err
	}
	return inventory.RestoreStockItem(name, row.quantity, row.version)
}

func fromEntry(e audit.Entry) auditRow {
	return auditRow{id: e.ID().String(), recordedAt: e.RecordedAt(), message: e.Message()}
}

func toEntry(row auditRow) (audit.Entry, error) {
	id, err := kernel.UUIDFromString(row.id)
	if err != nil {
		return audit.Entry{}, err
	}
	return audit.RestoreEntry(id, row.recordedAt, row.message)
}

func fromUser(u *user.User) userRow {
	return userRow{username: u.Username(), passwordHash: u.PasswordHash(), role: string(u.Role())}
}

func toUser(row userRow) (*user.User, error) {
	return user.RestoreUser(row.username, row.passwordHash, access.Role(row.role))
}
