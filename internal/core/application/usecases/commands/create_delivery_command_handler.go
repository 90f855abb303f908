package commands

import (
	"context"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/delivery"

	"github.com/rs/zerolog"
)

type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	logger     zerolog.Logger
}

func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory, logger zerolog.Logger) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With().Str("command", "create_delivery").Logger(),
	}
}

func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (err error) {
	defer func() { observe("create_delivery", err) }()

	if err = cmd.Validate(); err != nil {
		return err
	}

	if err = cmd.Actor().Can(access.CreateDelivery); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := delivery.NewDelivery(cmd.DeliveryID(), cmd.Customer(), cmd.Item(), cmd.Driver())
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return err
	}

	recordAudit(ctx, uow.AuditLogRepository(), h.logger, d)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info().
		Str("actor", cmd.Actor().Username).
		Str("delivery_id", d.ID().String()).
		Msg("delivery scheduled")
	return nil
}
