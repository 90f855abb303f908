package commands

import (
	"context"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/user"
	"retailops/internal/core/ports"

	"github.com/rs/zerolog"
)

type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	logger     zerolog.Logger
}

func NewCreateUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	logger zerolog.Logger,
) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		logger:     logger.With().Str("command", "create_user").Logger(),
	}
}

// Handle hashes the password and stores the account. A taken username is a
// validation error reported by the repository.
func (h CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (err error) {
	defer func() { observe("create_user", err) }()

	if err = cmd.Validate(); err != nil {
		return err
	}

	if err = cmd.Actor().Can(access.ManageUsers); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	u, err := user.NewUser(cmd.Username(), hash, cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return err
	}

	recordAudit(ctx, uow.AuditLogRepository(), h.logger, u)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info().
		Str("actor", cmd.Actor().Username).
		Str("username", u.Username()).
		Stringer("role", u.Role()).
		Msg("user created")
	return nil
}
