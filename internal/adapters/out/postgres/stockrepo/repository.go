package stockrepo

import (
	"context"
	"errors"
	"fmt"

	"retailops/internal/core/domain/model/inventory"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockRepository implements ports.StockRepository.
type GormStockRepository struct {
	db *gorm.DB
}

func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// GetForUpdate inserts a zero row when the item is new, then locks it. Two
// transactions racing on a new item serialize on the primary key.
func (r *GormStockRepository) GetForUpdate(ctx context.Context, item kernel.ItemName) (*inventory.StockItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	seed := StockItemDTO{Item: item.String()}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return nil, errs.NewPersistenceError("create stock item", err)
	}

	var dto StockItemDTO
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&dto, "item = ?", item.String()).Error
	if err != nil {
		return nil, errs.NewPersistenceError("lock stock item", err)
	}

	return toDomain(dto)
}

// Save writes the row only if the stored version is older than the item's,
// so a write based on a stale read never lands.
func (r *GormStockRepository) Save(ctx context.Context, stock *inventory.StockItem) error {
	if err := stock.Validate(); err != nil {
		return err
	}

	dto := fromDomain(stock)
	result := r.db.WithContext(ctx).Model(&StockItemDTO{}).
		Where("item = ? AND version < ?", dto.Item, dto.Version).
		Updates(map[string]any{"quantity": dto.Quantity, "version": dto.Version})
	if result.Error != nil {
		return errs.NewPersistenceError("update stock item", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewPersistenceError("update stock item",
			fmt.Errorf("%w: %s is missing or already at version %d", errs.ErrStaleVersion, dto.Item, dto.Version))
	}
	return nil
}

func (r *GormStockRepository) Get(ctx context.Context, item kernel.ItemName) (*inventory.StockItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	var dto StockItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "item = ?", item.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", item.String())
		}
		return nil, errs.NewPersistenceError("get stock item", err)
	}

	return toDomain(dto)
}

func (r *GormStockRepository) List(ctx context.Context) ([]*inventory.StockItem, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *GormStockRepository) LowStock(ctx context.Context, threshold int) ([]*inventory.StockItem, error) {
	return r.find(r.db.WithContext(ctx).Where("quantity <= ?", threshold))
}

func (r *GormStockRepository) find(db *gorm.DB) ([]*inventory.StockItem, error) {
	var dtos []StockItemDTO
	if err := db.Order("item").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("list stock items", err)
	}

	items := make([]*inventory.StockItem, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, nil
}
