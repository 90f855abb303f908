package commands

import (
	"context"

	"retailops/internal/core/domain/model/access"

	"github.com/rs/zerolog"
)

// DeleteUserCommandHandler removes an account. Nobody may delete themselves.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
	logger     zerolog.Logger
}

func NewDeleteUserCommandHandler(uowFactory UserUoWFactory, logger zerolog.Logger) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With().Str("command", "delete_user").Logger(),
	}
}

func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) (err error) {
	defer func() { observe("delete_user", err) }()

	if err = cmd.Validate(); err != nil {
		return err
	}

	if err = cmd.Actor().Can(access.ManageUsers); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	u, err := repo.Get(ctx, cmd.Username())
	if err != nil {
		return err
	}

	if err = u.Remove(cmd.Actor()); err != nil {
		return err
	}

	if err = repo.Delete(ctx, u.Username()); err != nil {
		return err
	}

	recordAudit(ctx, uow.AuditLogRepository(), h.logger, u)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info().
		Str("actor", cmd.Actor().Username).
		Str("username", u.Username()).
		Msg("user deleted")
	return nil
}
