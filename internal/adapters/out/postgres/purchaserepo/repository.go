package purchaserepo

import (
	"context"
	"errors"

	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/core/domain/model/purchase"
	"retailops/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPurchaseOrderRepository implements ports.PurchaseOrderRepository.
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

func (r *GormPurchaseOrderRepository) Add(ctx context.Context, aggregate *purchase.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("add purchase order", err)
	}
	return nil
}

func (r *GormPurchaseOrderRepository) Update(ctx context.Context, aggregate *purchase.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PurchaseOrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"status": dto.Status, "quantity": dto.Quantity, "supplier": dto.Supplier})
	if result.Error != nil {
		return errs.NewPersistenceError("update purchase order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("purchaseOrderId", aggregate.ID().String())
	}
	return nil
}

func (r *GormPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*purchase.Order, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the row with SELECT ... FOR UPDATE.
func (r *GormPurchaseOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*purchase.Order, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormPurchaseOrderRepository) get(db *gorm.DB, id kernel.UUID) (*purchase.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PurchaseOrderDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("purchaseOrderId", id.String())
		}
		return nil, errs.NewPersistenceError("get purchase order", err)
	}

	return toDomain(dto)
}

func (r *GormPurchaseOrderRepository) List(ctx context.Context) ([]*purchase.Order, error) {
	var dtos []PurchaseOrderDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC, seq DESC").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("list purchase orders", err)
	}

	orders := make([]*purchase.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *GormPurchaseOrderRepository) CountByStatus(ctx context.Context) (map[purchase.Status]int, error) {
	var rows []struct {
		Status int
		Count  int
	}
	err := r.db.WithContext(ctx).Model(&PurchaseOrderDTO{}).
		Select("status, count(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errs.NewPersistenceError("count purchase orders", err)
	}

	counts := make(map[purchase.Status]int, len(rows))
	for _, row := range rows {
		counts[purchase.Status(row.Status)] = row.Count
	}
	return counts, nil
}
