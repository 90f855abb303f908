// Package http exposes the command and query handlers over a JSON API on echo.
// Callers authenticate with HTTP Basic credentials on every /api request
// except login.
package http

import (
	"errors"
	"net/http"

	"retailops/internal/core/application/usecases/commands"
	"retailops/internal/core/application/usecases/queries"
	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/delivery"
	"retailops/internal/core/domain/model/inventory"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/core/domain/model/purchase"
	"retailops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const defaultAuditLimit = 100

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	authenticate       commands.AuthenticateCommandHandler
	createPurchase     commands.CreatePurchaseOrderCommandHandler
	transitionPurchase commands.TransitionPurchaseOrderCommandHandler
	createDelivery     commands.CreateDeliveryCommandHandler
	setDeliveryStatus  commands.SetDeliveryStatusCommandHandler
	adjustStock        commands.AdjustStockCommandHandler
	createUser         commands.CreateUserCommandHandler
	deleteUser         commands.DeleteUserCommandHandler

	// Query handlers
	purchases  queries.GetPurchaseOrdersQueryHandler
	deliveries queries.GetDeliveriesQueryHandler
	stock      queries.GetStockQueryHandler
	auditLog   queries.GetAuditLogQueryHandler
	dashboard  queries.GetDashboardQueryHandler
	users      queries.GetUsersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	authenticate commands.AuthenticateCommandHandler,
	createPurchase commands.CreatePurchaseOrderCommandHandler,
	transitionPurchase commands.TransitionPurchaseOrderCommandHandler,
	createDelivery commands.CreateDeliveryCommandHandler,
	setDeliveryStatus commands.SetDeliveryStatusCommandHandler,
	adjustStock commands.AdjustStockCommandHandler,
	createUser commands.CreateUserCommandHandler,
	deleteUser commands.DeleteUserCommandHandler,
	purchases queries.GetPurchaseOrdersQueryHandler,
	deliveries queries.GetDeliveriesQueryHandler,
	stock queries.GetStockQueryHandler,
	auditLog queries.GetAuditLogQueryHandler,
	dashboard queries.GetDashboardQueryHandler,
	users queries.GetUsersQueryHandler,
) *Server {
	return &Server{
		authenticate:       authenticate,
		createPurchase:     createPurchase,
		transitionPurchase: transitionPurchase,
		createDelivery:     createDelivery,
		setDeliveryStatus:  setDeliveryStatus,
		adjustStock:        adjustStock,
		createUser:         createUser,
		deleteUser:         deleteUser,
		purchases:          purchases,
		deliveries:         deliveries,
		stock:              stock,
		auditLog:           auditLog,
		dashboard:          dashboard,
		users:              users,
	}
}

// NewEcho builds the echo instance with middleware and every route registered.
func NewEcho(s *Server, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(observeRequests())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/api/login", s.Login)

	api := e.Group("/api", basicAuth(s.authenticate, map[string]bool{"/api/login": true}))

	api.GET("/purchases", s.GetPurchases)
	api.GET("/purchases/:id", s.GetPurchase)
	api.POST("/purchases", s.CreatePurchase, requireOperation(access.CreatePurchase))
	api.PUT("/purchases/:id", s.TransitionPurchase, requireOperation(access.TransitionPurchase))

	api.GET("/deliveries", s.GetDeliveries)
	api.GET("/deliveries/:id", s.GetDelivery)
	api.POST("/deliveries", s.CreateDelivery, requireOperation(access.CreateDelivery))
	api.PUT("/deliveries/:id", s.SetDeliveryStatus, requireOperation(access.TransitionDelivery))

	api.GET("/inventory", s.GetInventory)
	api.GET("/inventory/low", s.GetLowStock)
	api.GET("/inventory/:item", s.GetStockLevel)
	api.POST("/inventory", s.AdjustStock, requireOperation(access.AdjustInventory))

	api.GET("/audit", s.GetAuditLog)
	api.GET("/dashboard", s.GetDashboard)
	api.GET("/reports", s.GetReport)

	api.GET("/users", s.GetUsers, requireOperation(access.ManageUsers))
	api.POST("/users", s.CreateUser, requireOperation(access.ManageUsers))
	api.DELETE("/users/:username", s.DeleteUser, requireOperation(access.ManageUsers))

	return e
}

// bindValid binds the JSON body and runs its validate tags.
func bindValid(ctx echo.Context, v any) error {
	if err := ctx.Bind(v); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return ctx.Validate(v)
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// Login handles POST /api/login. Bad credentials answer 401.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := bindValid(ctx, &req); err != nil {
		return err
	}

	actor, err := s.authenticate.Handle(ctx.Request().Context(), commands.NewLoginCommand(req.Username, req.Password))
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return err
	}

	return ctx.JSON(http.StatusOK, actorResponse{Username: actor.Username, Role: actor.Role.String()})
}

// GetPurchases handles GET /api/purchases, newest first.
func (s *Server) GetPurchases(ctx echo.Context) error {
	orders, err := s.purchases.Handle(ctx.Request().Context(), queries.NewGetPurchaseOrdersQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(orders, toPurchaseResponse))
}

// GetPurchase handles GET /api/purchases/:id.
func (s *Server) GetPurchase(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetPurchaseOrderQuery(id)
	if err != nil {
		return err
	}

	order, err := s.purchases.HandleOne(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPurchaseResponse(order))
}

// CreatePurchase handles POST /api/purchases.
func (s *Server) CreatePurchase(ctx echo.Context) error {
	var req purchaseRequest
	if err := bindValid(ctx, &req); err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreatePurchaseOrderCommand(actorFrom(ctx), id, req.Item, req.Quantity, req.Supplier)
	if err != nil {
		return err
	}
	if err := s.createPurchase.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondPurchase(ctx, http.StatusCreated, id)
}

// TransitionPurchase handles PUT /api/purchases/:id with a target status.
func (s *Server) TransitionPurchase(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var req statusRequest
	if err := bindValid(ctx, &req); err != nil {
		return err
	}
	target, err := purchase.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewTransitionPurchaseOrderCommand(actorFrom(ctx), id, target)
	if err != nil {
		return err
	}
	if err := s.transitionPurchase.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondPurchase(ctx, http.StatusOK, id)
}

func (s *Server) respondPurchase(ctx echo.Context, code int, id kernel.UUID) error {
	query, err := queries.NewGetPurchaseOrderQuery(id)
	if err != nil {
		return err
	}
	order, err := s.purchases.HandleOne(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(code, toPurchaseResponse(order))
}

// GetDeliveries handles GET /api/deliveries, newest first.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	deliveries, err := s.deliveries.Handle(ctx.Request().Context(), queries.NewGetDeliveriesQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(deliveries, toDeliveryResponse))
}

// GetDelivery handles GET /api/deliveries/:id.
func (s *Server) GetDelivery(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	return s.respondDelivery(ctx, http.StatusOK, id)
}

// CreateDelivery handles POST /api/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req deliveryRequest
	if err := bindValid(ctx, &req); err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(actorFrom(ctx), id, req.Customer, req.Item, req.Driver)
	if err != nil {
		return err
	}
	if err := s.createDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondDelivery(ctx, http.StatusCreated, id)
}

// SetDeliveryStatus handles PUT /api/deliveries/:id with a new status.
func (s *Server) SetDeliveryStatus(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var req statusRequest
	if err := bindValid(ctx, &req); err != nil {
		return err
	}
	status, err := delivery.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetDeliveryStatusCommand(actorFrom(ctx), id, status)
	if err != nil {
		return err
	}
	if err := s.setDeliveryStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondDelivery(ctx, http.StatusOK, id)
}

func (s *Server) respondDelivery(ctx echo.Context, code int, id kernel.UUID) error {
	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return err
	}
	d, err := s.deliveries.HandleOne(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(code, toDeliveryResponse(d))
}

// GetInventory handles GET /api/inventory.
func (s *Server) GetInventory(ctx echo.Context) error {
	items, err := s.stock.Handle(ctx.Request().Context(), queries.NewGetStockQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(items, toStockItemResponse))
}

// GetLowStock handles GET /api/inventory/low?threshold=N.
func (s *Server) GetLowStock(ctx echo.Context) error {
	threshold := inventory.DefaultLowStockThreshold
	if err := echo.QueryParamsBinder(ctx).Int("threshold", &threshold).BindError(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("threshold", err)
	}

	query, err := queries.NewGetLowStockQuery(threshold)
	if err != nil {
		return err
	}
	items, err := s.stock.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(items, toStockItemResponse))
}

// GetStockLevel handles GET /api/inventory/:item.
func (s *Server) GetStockLevel(ctx echo.Context) error {
	query, err := queries.NewGetStockLevelQuery(ctx.Param("item"))
	if err != nil {
		return err
	}
	level, err := s.stock.HandleLevel(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toStockItemResponse(level))
}

// AdjustStock handles POST /api/inventory with a signed amount.
func (s *Server) AdjustStock(ctx echo.Context) error {
	var req stockAdjustmentRequest
	if err := bindValid(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAdjustStockCommand(actorFrom(ctx), req.Item, req.Amount)
	if err != nil {
		return err
	}
	quantity, err := s.adjustStock.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, stockItemResponse{
		Item:     cmd.Item().String(),
		Quantity: quantity,
		Low:      quantity <= inventory.DefaultLowStockThreshold,
	})
}

// GetAuditLog handles GET /api/audit?limit=N, newest first.
func (s *Server) GetAuditLog(ctx echo.Context) error {
	limit := defaultAuditLimit
	if err := echo.QueryParamsBinder(ctx).Int("limit", &limit).BindError(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("limit", err)
	}

	query, err := queries.NewGetAuditLogQuery(limit)
	if err != nil {
		return err
	}
	entries, err := s.auditLog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, mapSlice(entries, func(e queries.AuditEntryResponse) auditEntryResponse {
		return auditEntryResponse{RecordedAt: e.RecordedAt, Message: e.Message, Line: e.Line}
	}))
}

// GetDashboard handles GET /api/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	d, err := s.dashboard.Handle(ctx.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dashboardResponse{
		Purchases:  d.Purchases,
		Deliveries: d.Deliveries,
		StockItems: d.StockItems,
		LowStock:   d.LowStock,
	})
}

// GetReport handles GET /api/reports.
func (s *Server) GetReport(ctx echo.Context) error {
	r, err := s.dashboard.HandleReport(ctx.Request().Context(), queries.NewGetReportQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, reportResponse{
		Purchases: purchaseReport{
			Approved: r.PurchasesApproved,
			Pending:  r.PurchasesPending,
			Other:    r.PurchasesOther,
		},
		Deliveries: deliveryReport{
			Scheduled: r.DeliveriesScheduled,
			InTransit: r.DeliveriesInTransit,
			Delivered: r.DeliveriesDelivered,
		},
	})
}

// GetUsers handles GET /api/users.
func (s *Server) GetUsers(ctx echo.Context) error {
	users, err := s.users.Handle(ctx.Request().Context(), queries.NewGetUsersQuery(actorFrom(ctx)))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(users, func(u queries.UserResponse) userResponse {
		return userResponse{Username: u.Username, Role: u.Role.String()}
	}))
}

// CreateUser handles POST /api/users.
func (s *Server) CreateUser(ctx echo.Context) error {
	var req userRequest
	if err := bindValid(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateUserCommand(actorFrom(ctx), req.Username, req.Password, req.Role)
	if err != nil {
		return err
	}
	if err := s.createUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, userResponse{Username: cmd.Username(), Role: cmd.Role().String()})
}

// DeleteUser handles DELETE /api/users/:username.
func (s *Server) DeleteUser(ctx echo.Context) error {
	cmd, err := commands.NewDeleteUserCommand(actorFrom(ctx), ctx.Param("username"))
	if err != nil {
		return err
	}
	if err := s.deleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
