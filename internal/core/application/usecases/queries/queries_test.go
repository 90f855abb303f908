package queries_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"retailops/internal/adapters/out/memory"
	"retailops/internal/core/application/usecases/queries"
	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/audit"
	"retailops/internal/core/domain/model/delivery"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/core/domain/model/purchase"
	"retailops/internal/core/domain/model/user"
	"retailops/internal/core/ports"
	"retailops/internal/pkg/errs"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type QueriesTestSuite struct {
	suite.Suite
	factory *memory.UnitOfWorkFactory
}

func (suite *QueriesTestSuite) SetupTest() {
	suite.factory = memory.NewUnitOfWorkFactory(memory.NewStore())
}

func (suite *QueriesTestSuite) uow() ports.UnitOfWork {
	return suite.factory.Create()
}

func (suite *QueriesTestSuite) addOrder(item string, quantity int, status purchase.Status) *purchase.Order {
	o, err := purchase.NewOrder(kernel.NewUUID(), kernel.MustItemName(item), quantity, mustName("supplier", "Local Roaster"))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow().PurchaseOrderRepository().Add(context.Background(), o))
	switch status {
	case purchase.Approved:
		suite.Require().NoError(o.Approve())
	case purchase.Rejected:
		suite.Require().NoError(o.Reject())
	case purchase.Cancelled:
		suite.Require().NoError(o.Cancel())
	}
	suite.Require().NoError(suite.uow().PurchaseOrderRepository().Update(context.Background(), o))
	return o
}

func (suite *QueriesTestSuite) addDelivery(status delivery.Status) *delivery.Delivery {
	d, err := delivery.NewDelivery(kernel.NewUUID(), mustName("customer", "Cafe Luna"),
		kernel.MustItemName("Coffee Beans"), mustName("driver", "Janex"))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow().DeliveryRepository().Add(context.Background(), d))
	if status != delivery.Scheduled {
		_, err = d.SetStatus(status)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.uow().DeliveryRepository().Update(context.Background(), d))
	}
	return d
}

func (suite *QueriesTestSuite) stock(item string, quantity int) {
	repo := suite.uow().StockRepository()
	s, err := repo.GetForUpdate(context.Background(), kernel.MustItemName(item))
	suite.Require().NoError(err)
	s.Adjust(quantity)
	suite.Require().NoError(repo.Save(context.Background(), s))
}

func mustName(field, value string) kernel.Name {
	n, err := kernel.NewName(field, value)
	if err != nil {
		panic(err)
	}
	return n
}

func (suite *QueriesTestSuite) TestPurchaseOrders_NewestFirst() {
	first := suite.addOrder("Coffee Beans", 20, purchase.Pending)
	second := suite.addOrder("Milk", 10, purchase.Approved)
	handler := queries.NewGetPurchaseOrdersQueryHandler(suite.factory)

	result, err := handler.Handle(context.Background(), queries.NewGetPurchaseOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(result[0].ID.IsEqual(second.ID()))
	suite.Equal(purchase.Approved, result[0].Status)
	suite.True(result[1].ID.IsEqual(first.ID()))
	suite.Equal("Local Roaster", result[1].Supplier)
}

func (suite *QueriesTestSuite) TestPurchaseOrder_ByIDAndNotFound() {
	o := suite.addOrder("Sugar", 5, purchase.Pending)
	handler := queries.NewGetPurchaseOrdersQueryHandler(suite.factory)

	query, err := queries.NewGetPurchaseOrderQuery(o.ID())
	suite.Require().NoError(err)
	result, err := handler.HandleOne(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("Sugar", result.Item)
	suite.Equal(5, result.Quantity)

	query, _ = queries.NewGetPurchaseOrderQuery(kernel.NewUUID())
	_, err = handler.HandleOne(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesTestSuite) TestPurchaseOrder_ZeroValueQuery() {
	handler := queries.NewGetPurchaseOrdersQueryHandler(suite.factory)
	_, err := handler.HandleOne(context.Background(), queries.GetPurchaseOrderQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetPurchaseOrderQueryIsNotConstructed)
}

func (suite *QueriesTestSuite) TestDeliveries() {
	d := suite.addDelivery(delivery.InTransit)
	handler := queries.NewGetDeliveriesQueryHandler(suite.factory)

	list, err := handler.Handle(context.Background(), queries.NewGetDeliveriesQuery())
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(delivery.InTransit, list[0].Status)
	suite.Equal("Cafe Luna", list[0].Customer)

	query, err := queries.NewGetDeliveryQuery(d.ID())
	suite.Require().NoError(err)
	one, err := handler.HandleOne(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("Janex", one.Driver)
}

func (suite *QueriesTestSuite) TestStock_ListAndLow() {
	suite.stock("Milk", 25)
	suite.stock("Bagel", 8)
	suite.stock("Cheesecake", 10)
	handler := queries.NewGetStockQueryHandler(suite.factory, nil, zerolog.Nop())

	all, err := handler.Handle(context.Background(), queries.NewGetStockQuery())
	suite.Require().NoError(err)
	suite.Equal([]queries.StockItemResponse{
		{Item: "Bagel", Quantity: 8, Low: true, Version: 1},
		{Item: "Cheesecake", Quantity: 10, Low: true, Version: 1},
		{Item: "Milk", Quantity: 25, Low: false, Version: 1},
	}, all)

	lowQuery, err := queries.NewGetLowStockQuery(9)
	suite.Require().NoError(err)
	low, err := handler.Handle(context.Background(), lowQuery)
	suite.Require().NoError(err)
	suite.Require().Len(low, 1)
	suite.Equal("Bagel", low[0].Item)

	_, err = queries.NewGetLowStockQuery(-1)
	suite.Require().ErrorIs(err, errs.ErrValidation)
}

func (suite *QueriesTestSuite) TestStockLevel_NotFound() {
	handler := queries.NewGetStockQueryHandler(suite.factory, nil, zerolog.Nop())
	query, err := queries.NewGetStockLevelQuery("Unicorn Dust")
	suite.Require().NoError(err)

	_, err = handler.HandleLevel(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

type MockStockCache struct{ mock.Mock }

func (m *MockStockCache) Get(ctx context.Context, item kernel.ItemName) (int, bool, error) {
	args := m.Called(ctx, item)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockStockCache) Set(ctx context.Context, item kernel.ItemName, quantity int, version int64) error {
	return m.Called(ctx, item, quantity, version).Error(0)
}

func (suite *QueriesTestSuite) TestStockLevel_CacheHit() {
	ctx := context.Background()
	cache := new(MockStockCache)
	cache.On("Get", ctx, kernel.MustItemName("Milk")).Return(25, true, nil).Once()
	handler := queries.NewGetStockQueryHandler(suite.factory, cache, zerolog.Nop())

	query, _ := queries.NewGetStockLevelQuery("Milk")
	result, err := handler.HandleLevel(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(25, result.Quantity)
	cache.AssertExpectations(suite.T())
	cache.AssertNotCalled(suite.T(), "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QueriesTestSuite) TestStockLevel_CacheMissFillsCache() {
	ctx := context.Background()
	suite.stock("Milk", 25)
	item := kernel.MustItemName("Milk")
	cache := new(MockStockCache)
	mock.InOrder(
		cache.On("Get", ctx, item).Return(0, false, nil).Once(),
		cache.On("Set", ctx, item, 25, int64(1)).Return(nil).Once(),
	)
	handler := queries.NewGetStockQueryHandler(suite.factory, cache, zerolog.Nop())

	query, _ := queries.NewGetStockLevelQuery("Milk")
	result, err := handler.HandleLevel(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(25, result.Quantity)
	cache.AssertExpectations(suite.T())
}

func (suite *QueriesTestSuite) TestStockLevel_CacheErrorFallsBack() {
	ctx := context.Background()
	suite.stock("Sugar", 40)
	cache := new(MockStockCache)
	cache.On("Get", ctx, mock.Anything).Return(0, false, errors.New("redis down")).Once()
	cache.On("Set", ctx, mock.Anything, 40, mock.Anything).Return(errors.New("redis down")).Once()
	handler := queries.NewGetStockQueryHandler(suite.factory, cache, zerolog.Nop())

	query, _ := queries.NewGetStockLevelQuery("Sugar")
	result, err := handler.HandleLevel(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(40, result.Quantity)
}

// versionedCache keeps the entry with the highest version. holdNextSet parks
// the next Set until released.
type versionedCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	hold    chan struct{}
	held    chan struct{}
}

type cacheEntry struct {
	quantity int
	version  int64
}

func (c *versionedCache) Get(_ context.Context, item kernel.ItemName) (int, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[item.String()]
	return e.quantity, ok, nil
}

func (c *versionedCache) Set(_ context.Context, item kernel.ItemName, quantity int, version int64) error {
	c.mu.Lock()
	hold, held := c.hold, c.held
	c.hold, c.held = nil, nil
	c.mu.Unlock()
	if hold != nil {
		close(held)
		<-hold
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = map[string]cacheEntry{}
	}
	if e, ok := c.entries[item.String()]; ok && e.version >= version {
		return nil
	}
	c.entries[item.String()] = cacheEntry{quantity: quantity, version: version}
	return nil
}

func (c *versionedCache) holdNextSet() (held <-chan struct{}, release func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hold = make(chan struct{})
	c.held = make(chan struct{})
	hold := c.hold
	return c.held, func() { close(hold) }
}

func (suite *QueriesTestSuite) TestStockLevel_LateFillKeepsNewerQuantity() {
	ctx := context.Background()
	suite.stock("Milk", 25)
	item := kernel.MustItemName("Milk")
	cache := &versionedCache{}
	handler := queries.NewGetStockQueryHandler(suite.factory, cache, zerolog.Nop())
	held, release := cache.holdNextSet()

	// The read misses, loads 25 from storage and stalls before filling.
	done := make(chan error, 1)
	go func() {
		query, _ := queries.NewGetStockLevelQuery("Milk")
		_, err := handler.HandleLevel(ctx, query)
		done <- err
	}()
	<-held

	// A withdrawal commits and refreshes the cache meanwhile.
	uow := suite.uow()
	suite.Require().NoError(uow.Begin(ctx))
	s, err := uow.StockRepository().GetForUpdate(ctx, item)
	suite.Require().NoError(err)
	s.Adjust(-5)
	suite.Require().NoError(uow.StockRepository().Save(ctx, s))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().NoError(cache.Set(ctx, item, s.Quantity(), s.Version()))

	release()
	suite.Require().NoError(<-done)

	query, _ := queries.NewGetStockLevelQuery("Milk")
	result, err := handler.HandleLevel(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(20, result.Quantity)
}

func (suite *QueriesTestSuite) TestAuditLog_LimitAndFormat() {
	repo := suite.uow().AuditLogRepository()
	for _, msg := range []string{"System Loaded", "Order Created: Milk (+10)", "Rejected: Milk"} {
		entry, err := audit.NewEntry(audit.NewEvent(msg))
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Append(context.Background(), entry))
	}
	handler := queries.NewGetAuditLogQueryHandler(suite.factory)

	query, err := queries.NewGetAuditLogQuery(2)
	suite.Require().NoError(err)
	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Rejected: Milk", result[0].Message)
	suite.Regexp(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} - Rejected: Milk$`, result[0].Line)

	_, err = queries.NewGetAuditLogQuery(-5)
	suite.Require().ErrorIs(err, errs.ErrValidation)
}

func (suite *QueriesTestSuite) TestDashboardAndReport() {
	suite.addOrder("Coffee Beans", 20, purchase.Approved)
	suite.addOrder("Milk", 20, purchase.Approved)
	suite.addOrder("Sugar", 5, purchase.Pending)
	suite.addOrder("Bagel", 5, purchase.Rejected)
	suite.addOrder("Matcha Powder", 5, purchase.Cancelled)
	suite.addDelivery(delivery.Scheduled)
	suite.addDelivery(delivery.InTransit)
	suite.addDelivery(delivery.Delivered)
	suite.stock("Milk", 25)
	suite.stock("Bagel", 8)
	handler := queries.NewGetDashboardQueryHandler(suite.factory)

	dashboard, err := handler.Handle(context.Background(), queries.NewGetDashboardQuery())
	suite.Require().NoError(err)
	suite.Equal(queries.DashboardResponse{Purchases: 5, Deliveries: 3, StockItems: 2, LowStock: 1}, dashboard)

	report, err := handler.HandleReport(context.Background(), queries.NewGetReportQuery())
	suite.Require().NoError(err)
	suite.Equal(queries.ReportResponse{
		PurchasesApproved:   2,
		PurchasesPending:    1,
		PurchasesOther:      2,
		DeliveriesScheduled: 1,
		DeliveriesInTransit: 1,
		DeliveriesDelivered: 1,
	}, report)
}

func (suite *QueriesTestSuite) TestUsers_AdminOnly() {
	for _, name := range []string{"rajie", "cherry"} {
		u, err := user.NewUser(name, "hash", access.Admin)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.uow().UserRepository().Add(context.Background(), u))
	}
	handler := queries.NewGetUsersQueryHandler(suite.factory)

	result, err := handler.Handle(context.Background(),
		queries.NewGetUsersQuery(access.Actor{Username: "cherry", Role: access.Admin}))
	suite.Require().NoError(err)
	suite.Equal([]queries.UserResponse{
		{Username: "cherry", Role: access.Admin},
		{Username: "rajie", Role: access.Admin},
	}, result)

	_, err = handler.Handle(context.Background(),
		queries.NewGetUsersQuery(access.Actor{Username: "rhaa", Role: access.Inventory}))
	suite.Require().ErrorIs(err, errs.ErrUnauthorized)
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}
