package queries

import (
	"errors"
	"time"

	"retailops/internal/core/domain/model/audit"
	"retailops/internal/pkg/errs"
	"retailops/internal/pkg/guard"
)

var ErrGetAuditLogQueryIsNotConstructed = errors.New(
	"GetAuditLogQuery must be created via NewGetAuditLogQuery constructor",
)

// GetAuditLogQuery returns the most recent entries first. A zero limit
// returns the whole log.
type GetAuditLogQuery struct {
	limit int
	guard guard.ConstructorGuard
}

func NewGetAuditLogQuery(limit int) (GetAuditLogQuery, error) {
	if limit < 0 {
		return GetAuditLogQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, "max int")
	}
	return GetAuditLogQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAuditLogQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditLogQueryIsNotConstructed)
}

func (q GetAuditLogQuery) Limit() int {
	return q.limit
}

// AuditEntryResponse carries the display line "YYYY-MM-DD HH:MM:SS - message".
type AuditEntryResponse struct {
	RecordedAt time.Time
	Message    string
	Line       string
}

func auditEntryResponse(e audit.Entry) AuditEntryResponse {
	return AuditEntryResponse{
		RecordedAt: e.RecordedAt(),
		Message:    e.Message(),
		Line:       e.String(),
	}
}
