package commands_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"retailops/internal/adapters/out/memory"
	"retailops/internal/core/application/usecases/commands"
	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/audit"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var (
	adminActor      = access.Actor{Username: "cherry", Role: access.Admin}
	purchasingActor = access.Actor{Username: "rajie", Role: access.Purchasing}
	deliveryActor   = access.Actor{Username: "janex", Role: access.Delivery}
	inventoryActor  = access.Actor{Username: "rhaa", Role: access.Inventory}
)

// fixture wires handlers to a fresh in-memory store.
type fixture struct {
	store   *memory.Store
	factory *memory.UnitOfWorkFactory
	logger  zerolog.Logger

	// auditErr, when set, makes every audit append fail.
	auditErr error
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	return &fixture{
		store:   store,
		factory: memory.NewUnitOfWorkFactory(store),
		logger:  zerolog.Nop(),
	}
}

func (f *fixture) create() ports.UnitOfWork {
	uow := f.factory.Create()
	if f.auditErr != nil {
		return failingAuditUoW{UnitOfWork: uow, err: f.auditErr}
	}
	return uow
}

func (f *fixture) purchaseFactory() commands.PurchaseUoWFactory {
	return purchaseFactoryFunc(func() commands.PurchaseUoW { return f.create() })
}

func (f *fixture) deliveryFactory() commands.DeliveryUoWFactory {
	return deliveryFactoryFunc(func() commands.DeliveryUoW { return f.create() })
}

func (f *fixture) stockFactory() commands.StockUoWFactory {
	return stockFactoryFunc(func() commands.StockUoW { return f.create() })
}

func (f *fixture) userFactory() commands.UserUoWFactory {
	return userFactoryFunc(func() commands.UserUoW { return f.create() })
}

// stock sets item's committed quantity.
func (f *fixture) stock(t *testing.T, item string, quantity int) {
	t.Helper()
	ctx := context.Background()
	repo := f.factory.Create().StockRepository()
	s, err := repo.GetForUpdate(ctx, kernel.MustItemName(item))
	require.NoError(t, err)
	s.Adjust(quantity - s.Quantity())
	require.NoError(t, repo.Save(ctx, s))
}

func (f *fixture) quantity(t *testing.T, item string) int {
	t.Helper()
	s, err := f.factory.Create().StockRepository().Get(context.Background(), kernel.MustItemName(item))
	require.NoError(t, err)
	return s.Quantity()
}

// auditMessages returns the log newest first.
func (f *fixture) auditMessages(t *testing.T) []string {
	t.Helper()
	entries, err := f.factory.Create().AuditLogRepository().List(context.Background(), 0)
	require.NoError(t, err)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Message())
	}
	return out
}

type purchaseFactoryFunc func() commands.PurchaseUoW

func (f purchaseFactoryFunc) Create() commands.PurchaseUoW { return f() }

type deliveryFactoryFunc func() commands.DeliveryUoW

func (f deliveryFactoryFunc) Create() commands.DeliveryUoW { return f() }

type stockFactoryFunc func() commands.StockUoW

func (f stockFactoryFunc) Create() commands.StockUoW { return f() }

type userFactoryFunc func() commands.UserUoW

func (f userFactoryFunc) Create() commands.UserUoW { return f() }

type failingAuditUoW struct {
	ports.UnitOfWork
	err error
}

func (u failingAuditUoW) AuditLogRepository() ports.AuditLogRepository {
	return failingAuditRepository{err: u.err}
}

type failingAuditRepository struct {
	err error
}

func (r failingAuditRepository) Append(context.Context, audit.Entry) error {
	return r.err
}

func (r failingAuditRepository) List(context.Context, int) ([]audit.Entry, error) {
	return nil, r.err
}

// fakeHasher prefixes passwords so tests can assert on stored hashes.
type fakeHasher struct{}

var errMismatch = errors.New("mismatch")

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) error {
	if strings.TrimPrefix(hash, "hashed:") != password {
		return errMismatch
	}
	return nil
}

func (f *fixture) seedFactory() commands.SeedUoWFactory {
	return seedFactoryFunc(func() commands.SeedUoW { return f.create() })
}

type seedFactoryFunc func() commands.SeedUoW

func (f seedFactoryFunc) Create() commands.SeedUoW { return f() }

// versionedCache is an in-process ports.StockCache that keeps the entry with
// the highest version. holdNextSet parks the next Set until released.
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

// holdNextSet returns a channel closed once the next Set is parked, and a
// release func that lets it continue.
func (c *versionedCache) holdNextSet() (held <-chan struct{}, release func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hold = make(chan struct{})
	c.held = make(chan struct{})
	hold := c.hold
	return c.held, func() { close(hold) }
}
