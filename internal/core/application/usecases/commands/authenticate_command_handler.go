package commands

import (
	"context"
	"errors"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/user"
	"retailops/internal/core/ports"
	"retailops/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// operationAuthenticate names the failed operation in AuthorizationError.
const operationAuthenticate = "authenticate"

// AuthenticateCommandHandler resolves credentials to an access.Actor. Unknown
// users and wrong passwords produce the same *errs.AuthorizationError.
type AuthenticateCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	logger     zerolog.Logger
}

func NewAuthenticateCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	logger zerolog.Logger,
) AuthenticateCommandHandler {
	return AuthenticateCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		logger:     logger.With().Str("command", "authenticate").Logger(),
	}
}

func (h AuthenticateCommandHandler) Handle(ctx context.Context, cmd AuthenticateCommand) (access.Actor, error) {
	if err := cmd.Validate(); err != nil {
		return access.Actor{}, err
	}

	if cmd.Username() == "" || cmd.Password() == "" {
		return access.Actor{}, errs.NewAuthorizationError("", operationAuthenticate)
	}

	uow := h.uowFactory.Create()
	if cmd.RecordLogin() {
		if err := uow.Begin(ctx); err != nil {
			return access.Actor{}, err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()
	}

	u, err := h.verify(ctx, uow.UserRepository(), cmd)
	if err != nil {
		return access.Actor{}, err
	}

	if !cmd.RecordLogin() {
		return u.Actor(), nil
	}

	u.RecordLogin()
	recordAudit(ctx, uow.AuditLogRepository(), h.logger, u)

	if err = uow.Commit(ctx); err != nil {
		return access.Actor{}, err
	}

	h.logger.Info().Str("username", u.Username()).Stringer("role", u.Role()).Msg("user logged in")
	return u.Actor(), nil
}

func (h AuthenticateCommandHandler) verify(
	ctx context.Context,
	repo ports.UserRepository,
	cmd AuthenticateCommand,
) (*user.User, error) {
	u, err := repo.Get(ctx, cmd.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.Debug().Str("username", cmd.Username()).Msg("unknown user")
		return nil, errs.NewAuthorizationError("", operationAuthenticate)
	}
	if err != nil {
		return nil, err
	}

	if err = h.hasher.Compare(u.PasswordHash(), cmd.Password()); err != nil {
		h.logger.Debug().Str("username", cmd.Username()).Msg("password mismatch")
		return nil, errs.NewAuthorizationError("", operationAuthenticate)
	}

	return u, nil
}
