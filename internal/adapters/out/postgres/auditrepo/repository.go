package auditrepo

import (
	"context"

	"retailops/internal/core/domain/model/audit"
	"retailops/internal/pkg/errs"

	"gorm.io/gorm"
)

const savepoint = "audit_append"

// GormAuditLogRepository implements ports.AuditLogRepository. Inside a
// transaction every append runs under a savepoint, so a failed insert is
// rolled back alone and the business writes can still commit.
type GormAuditLogRepository struct {
	db   *gorm.DB
	inTx bool
}

func NewGormAuditLogRepository(db *gorm.DB, inTx bool) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db, inTx: inTx}
}

func (r *GormAuditLogRepository) Append(ctx context.Context, entry audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	db := r.db.WithContext(ctx)

	if !r.inTx {
		if err := db.Create(&dto).Error; err != nil {
			return errs.NewPersistenceError("append audit entry", err)
		}
		return nil
	}

	if err := db.SavePoint(savepoint).Error; err != nil {
		return errs.NewPersistenceError("append audit entry", err)
	}

	if err := db.Create(&dto).Error; err != nil {
		if rbErr := db.RollbackTo(savepoint).Error; rbErr != nil {
			return errs.NewPersistenceError("append audit entry", rbErr)
		}
		return errs.NewPersistenceError("append audit entry", err)
	}
	return nil
}

func (r *GormAuditLogRepository) List(ctx context.Context, limit int) ([]audit.Entry, error) {
	db := r.db.WithContext(ctx).Order("seq DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}

	var dtos []AuditEntryDTO
	if err := db.Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("list audit entries", err)
	}

	entries := make([]audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
