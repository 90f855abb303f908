package commands

import (
	"context"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/inventory"
	"retailops/internal/core/domain/model/purchase"
	"retailops/internal/core/domain/services"
	"retailops/internal/core/ports"

	"github.com/rs/zerolog"
)

// TransitionPurchaseOrderCommandHandler applies a purchase transition.
//
// Approval is the cascade: the order row is locked, then the stock row, the
// StockReceiver approves and receives, and both rows plus the audit entry are
// committed together. A second concurrent approval waits on the order lock and
// then fails with errs.InvalidTransitionError, so stock is received once.
type TransitionPurchaseOrderCommandHandler struct {
	uowFactory PurchaseUoWFactory
	receiver   services.StockReceiver
	cache      ports.StockCache
	logger     zerolog.Logger
}

// NewTransitionPurchaseOrderCommandHandler builds the handler. cache may be nil.
func NewTransitionPurchaseOrderCommandHandler(
	uowFactory PurchaseUoWFactory,
	cache ports.StockCache,
	logger zerolog.Logger,
) TransitionPurchaseOrderCommandHandler {
	return TransitionPurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		receiver:   services.NewStockReceiver(),
		cache:      cache,
		logger:     logger.With().Str("command", "transition_purchase_order").Logger(),
	}
}

func (h TransitionPurchaseOrderCommandHandler) Handle(ctx context.Context, cmd TransitionPurchaseOrderCommand) (err error) {
	defer func() { observe("transition_purchase_order", err) }()

	if err = cmd.Validate(); err != nil {
		return err
	}

	if err = cmd.Actor().Can(access.TransitionPurchase); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.PurchaseOrderRepository()

	order, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	var received *inventory.StockItem
	switch cmd.Target() {
	case purchase.Approved:
		if received, err = h.approve(ctx, uow, order); err != nil {
			return err
		}
	case purchase.Rejected:
		err = order.Reject()
	case purchase.Cancelled:
		err = order.Cancel()
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	recordAudit(ctx, uow.AuditLogRepository(), h.logger, order)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if received != nil {
		refreshStockCache(ctx, h.cache, h.logger, received)
	}

	h.logger.Info().
		Str("actor", cmd.Actor().Username).
		Str("order_id", order.ID().String()).
		Stringer("status", order.Status()).
		Msg("purchase order transitioned")
	return nil
}

// approve locks the stock row after the order row and runs the cascade.
func (h TransitionPurchaseOrderCommandHandler) approve(
	ctx context.Context,
	uow PurchaseUoW,
	order *purchase.Order,
) (*inventory.StockItem, error) {
	if _, err := order.Status().Approve(); err != nil {
		return nil, err
	}

	stockRepo := uow.StockRepository()
	stock, err := stockRepo.GetForUpdate(ctx, order.Item())
	if err != nil {
		return nil, err
	}

	if err = h.receiver.Receive(order, stock); err != nil {
		return nil, err
	}

	if err = stockRepo.Save(ctx, stock); err != nil {
		return nil, err
	}

	return stock, nil
}
