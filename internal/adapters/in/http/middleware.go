package http

import (
	"errors"
	"strconv"
	"time"

	"retailops/internal/core/application/usecases/commands"
	"retailops/internal/core/domain/model/access"
	"retailops/internal/metrics"
	"retailops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const actorKey = "actor"

// actorFrom returns the caller resolved by basicAuth.
func actorFrom(c echo.Context) access.Actor {
	actor, _ := c.Get(actorKey).(access.Actor)
	return actor
}

// basicAuth resolves HTTP Basic credentials to an access.Actor. Public
// routes are skipped.
func basicAuth(authenticate commands.AuthenticateCommandHandler, public map[string]bool) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Skipper: func(c echo.Context) bool {
			return public[c.Path()]
		},
		Realm: "retailops",
		Validator: func(username, password string, c echo.Context) (bool, error) {
			actor, err := authenticate.Handle(c.Request().Context(), commands.NewAuthenticateCommand(username, password))
			if errors.Is(err, errs.ErrUnauthorized) {
				return false, nil
			}
			if err != nil {
				return false, err
			}
			c.Set(actorKey, actor)
			return true, nil
		},
	})
}

// requireOperation rejects the request before the body is read when the
// caller's role may not perform op.
func requireOperation(op access.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := actorFrom(c).Can(op); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// observeRequests records latency per route template. It returns the handler
// error unchanged for the request logger to render and log, labelling the
// sample with the status that error maps to.
func observeRequests() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status = statusFor(err)
			}
			metrics.HTTPRequestDuration.
				WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// requestLogger writes one zerolog line per request.
func requestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := logger.Info()
			if v.Status >= 500 {
				event = logger.Error().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("path", v.URIPath).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("actor", actorFrom(c).Username).
				Msg("request")
			return nil
		},
	})
}
