// Package auditrepo stores the append-only audit log.
package auditrepo

import (
	"time"

	"retailops/internal/core/domain/model/audit"
	"retailops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type AuditEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int64     `gorm:"autoIncrement;not null;uniqueIndex"`
	RecordedAt time.Time `gorm:"not null"`
	Message    string    `gorm:"type:text;not null"`
}

func (AuditEntryDTO) TableName() string {
	return "audit_log"
}

func fromDomain(e audit.Entry) AuditEntryDTO {
	return AuditEntryDTO{
		ID:         e.ID().Bytes(),
		RecordedAt: e.RecordedAt(),
		Message:    e.Message(),
	}
}

func toDomain(dto AuditEntryDTO) (audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return audit.Entry{}, err
	}
	return audit.RestoreEntry(id, dto.RecordedAt, dto.Message)
}
