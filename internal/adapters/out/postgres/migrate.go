package postgres

import (
	"fmt"

	"retailops/internal/adapters/out/postgres/auditrepo"
	"retailops/internal/adapters/out/postgres/deliveryrepo"
	"retailops/internal/adapters/out/postgres/purchaserepo"
	"retailops/internal/adapters/out/postgres/stockrepo"
	"retailops/internal/adapters/out/postgres/userrepo"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects with error translation enabled, which the user repository
// relies on to detect duplicate usernames.
func Open(dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&purchaserepo.PurchaseOrderDTO{},
		&deliveryrepo.DeliveryDTO{},
		&stockrepo.StockItemDTO{},
		&auditrepo.AuditEntryDTO{},
		&userrepo.UserDTO{},
	)
}

// DSN builds a libpq keyword/value connection string.
func DSN(host, port, user, password, name, sslMode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, name, sslMode)
}
