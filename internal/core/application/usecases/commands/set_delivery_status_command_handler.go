package commands

import (
	"context"

	"retailops/internal/core/domain/model/access"

	"github.com/rs/zerolog"
)

// SetDeliveryStatusCommandHandler applies a delivery status. Backward moves
// are accepted and logged at warn level.
type SetDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	logger     zerolog.Logger
}

func NewSetDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory, logger zerolog.Logger) SetDeliveryStatusCommandHandler {
	return SetDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With().Str("command", "set_delivery_status").Logger(),
	}
}

func (h SetDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd SetDeliveryStatusCommand) (err error) {
	defer func() { observe("set_delivery_status", err) }()

	if err = cmd.Validate(); err != nil {
		return err
	}

	if err = cmd.Actor().Can(access.TransitionDelivery); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()

	d, err := repo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	previous, err := d.SetStatus(cmd.Status())
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	recordAudit(ctx, uow.AuditLogRepository(), h.logger, d)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := h.logger.Info()
	if previous.IsRegression(d.Status()) {
		event = h.logger.Warn().Bool("regression", true)
	}
	event.
		Str("actor", cmd.Actor().Username).
		Str("delivery_id", d.ID().String()).
		Stringer("from", previous).
		Stringer("to", d.Status()).
		Msg("delivery status set")
	return nil
}
