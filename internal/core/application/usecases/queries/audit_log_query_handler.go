package queries

import (
	"context"

	"retailops/internal/core/ports"
)

type GetAuditLogQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetAuditLogQueryHandler(uowFactory ports.UnitOfWorkFactory) GetAuditLogQueryHandler {
	return GetAuditLogQueryHandler{uowFactory: uowFactory}
}

func (h GetAuditLogQueryHandler) Handle(ctx context.Context, query GetAuditLogQuery) ([]AuditEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.uowFactory.Create().AuditLogRepository().List(ctx, query.Limit())
	if err != nil {
		return nil, err
	}

	response := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, auditEntryResponse(e))
	}
	return response, nil
}
