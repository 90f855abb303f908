package commands

import (
	"context"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/purchase"

	"github.com/rs/zerolog"
)

// CreatePurchaseOrderCommandHandler stores a new Pending order and its
// "Order Created" audit entry in one transaction.
type CreatePurchaseOrderCommandHandler struct {
	uowFactory PurchaseUoWFactory
	logger     zerolog.Logger
}

func NewCreatePurchaseOrderCommandHandler(
	uowFactory PurchaseUoWFactory,
	logger zerolog.Logger,
) CreatePurchaseOrderCommandHandler {
	return CreatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With().Str("command", "create_purchase_order").Logger(),
	}
}

func (h CreatePurchaseOrderCommandHandler) Handle(ctx context.Context, cmd CreatePurchaseOrderCommand) (err error) {
	defer func() { observe("create_purchase_order", err) }()

	if err = cmd.Validate(); err != nil {
		return err
	}

	if err = cmd.Actor().Can(access.CreatePurchase); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := purchase.NewOrder(cmd.OrderID(), cmd.Item(), cmd.Quantity(), cmd.Supplier())
	if err != nil {
		return err
	}

	if err = uow.PurchaseOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	recordAudit(ctx, uow.AuditLogRepository(), h.logger, order)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info().
		Str("actor", cmd.Actor().Username).
		Str("order_id", order.ID().String()).
		Str("item", order.Item().String()).
		Int("quantity", order.Quantity()).
		Msg("purchase order created")
	return nil
}
