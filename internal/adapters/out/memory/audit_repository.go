package memory

import (
	"context"

	"retailops/internal/core/domain/model/audit"
)

type auditLogRepository struct {
	uow *UnitOfWork
}

func (r *auditLogRepository) Append(_ context.Context, entry audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	row := fromEntry(entry)
	return r.uow.write(func(t *tx) error {
		t.audit = append(t.audit, row)
		return nil
	})
}

func (r *auditLogRepository) List(_ context.Context, limit int) ([]audit.Entry, error) {
	s := r.uow.store
	s.mu.RLock()
	rows := make([]auditRow, 0, len(s.audit))
	rows = append(rows, s.audit...)
	s.mu.RUnlock()

	if t := r.uow.tx; t != nil {
		rows = append(rows, t.audit...)
	}

	if limit <= 0 || limit > len(rows) {
		limit = len(rows)
	}

	out := make([]audit.Entry, 0, limit)
	for i := len(rows) - 1; i >= 0 && len(out) < limit; i-- {
		entry, err := toEntry(rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}
