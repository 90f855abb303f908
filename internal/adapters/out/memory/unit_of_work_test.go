package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"retailops/internal/adapters/out/memory"
	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/audit"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/core/domain/model/purchase"
	"retailops/internal/core/domain/model/user"
	"retailops/internal/core/ports"
	"retailops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, item string, createdAt time.Time) *purchase.Order {
	t.Helper()
	supplier, _ := kernel.NewName("supplier", "Dairy Supplier")
	o, err := purchase.RestoreOrder(kernel.NewUUID(), kernel.MustItemName(item), 5, supplier, purchase.Pending, createdAt)
	require.NoError(t, err)
	return o
}

func TestUnitOfWork_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())

	t.Run("staged writes are invisible until commit", func(t *testing.T) {
		order := newOrder(t, "Milk", time.Now())
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.PurchaseOrderRepository().Add(ctx, order))

		_, err := factory.Create().PurchaseOrderRepository().Get(ctx, order.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		got, err := uow.PurchaseOrderRepository().Get(ctx, order.ID())
		require.NoError(t, err)
		assert.True(t, got.IsEqual(order))

		require.NoError(t, uow.Commit(ctx))

		_, err = factory.Create().PurchaseOrderRepository().Get(ctx, order.ID())
		require.NoError(t, err)
	})

	t.Run("rollback discards staged writes", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		stock, err := uow.StockRepository().GetForUpdate(ctx, kernel.MustItemName("Bagel"))
		require.NoError(t, err)
		stock.Adjust(8)
		require.NoError(t, uow.StockRepository().Save(ctx, stock))

		require.NoError(t, uow.Rollback(ctx))

		_, err = factory.Create().StockRepository().Get(ctx, kernel.MustItemName("Bagel"))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("commit and rollback need a transaction", func(t *testing.T) {
		uow := factory.Create()
		require.ErrorIs(t, uow.Commit(ctx), memory.ErrNoTransaction)
		require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoTransaction)
	})
}

func TestStockRepository_SerializesPerItem(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	item := kernel.MustItemName("Sugar")

	seed := factory.Create()
	stock, err := seed.StockRepository().GetForUpdate(ctx, item)
	require.NoError(t, err)
	stock.Adjust(40)
	require.NoError(t, seed.StockRepository().Save(ctx, stock))

	const rounds = 50
	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		for _, delta := range []int{5, -3} {
			wg.Add(1)
			go func(delta int) {
				defer wg.Done()
				uow := factory.Create()
				if err := uow.Begin(ctx); err != nil {
					t.Error(err)
					return
				}
				s, err := uow.StockRepository().GetForUpdate(ctx, item)
				if err != nil {
					t.Error(err)
					return
				}
				s.Adjust(delta)
				if err := uow.StockRepository().Save(ctx, s); err != nil {
					t.Error(err)
					return
				}
				if err := uow.Commit(ctx); err != nil {
					t.Error(err)
				}
			}(delta)
		}
	}
	wg.Wait()

	got, err := factory.Create().StockRepository().Get(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, 40+rounds*2, got.Quantity())
	assert.Equal(t, int64(1+rounds*2), got.Version())
}

func TestStockRepository_RejectsStaleSave(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	item := kernel.MustItemName("Milk")
	repo := factory.Create().StockRepository()

	stock, err := repo.GetForUpdate(ctx, item)
	require.NoError(t, err)
	stock.Adjust(25)
	require.NoError(t, repo.Save(ctx, stock))

	stale, err := repo.Get(ctx, item)
	require.NoError(t, err)

	fresh, err := repo.GetForUpdate(ctx, item)
	require.NoError(t, err)
	fresh.Adjust(-5)
	require.NoError(t, repo.Save(ctx, fresh))

	stale.Adjust(10)
	err = repo.Save(ctx, stale)
	require.ErrorIs(t, err, errs.ErrStaleVersion)
	require.ErrorIs(t, err, errs.ErrPersistence)

	got, err := repo.Get(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Quantity())
	assert.Equal(t, int64(2), got.Version())
}

func TestStockRepository_ListAndLowStock(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewUnitOfWorkFactory(memory.NewStore()).Create()
	for name, qty := range map[string]int{"Sugar": 40, "Bagel": 8, "Croissant": 10} {
		s, err := uow.StockRepository().GetForUpdate(ctx, kernel.MustItemName(name))
		require.NoError(t, err)
		s.Adjust(qty)
		require.NoError(t, uow.StockRepository().Save(ctx, s))
	}

	all, err := uow.StockRepository().List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Bagel", all[0].Item().String())
	assert.Equal(t, "Sugar", all[2].Item().String())

	low, err := uow.StockRepository().LowStock(ctx, 10)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "Croissant", low[1].Item().String())
}

func TestPurchaseOrderRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewUnitOfWorkFactory(memory.NewStore()).Create()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	older := newOrder(t, "Milk", base)
	newer := newOrder(t, "Sugar", base.Add(time.Minute))
	sameTimeLater := newOrder(t, "Bagel", base.Add(time.Minute))
	for _, o := range []*purchase.Order{older, newer, sameTimeLater} {
		require.NoError(t, uow.PurchaseOrderRepository().Add(ctx, o))
	}

	list, err := uow.PurchaseOrderRepository().List(ctx)

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, list[0].IsEqual(sameTimeLater))
	assert.True(t, list[1].IsEqual(newer))
	assert.True(t, list[2].IsEqual(older))

	counts, err := uow.PurchaseOrderRepository().CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, counts[purchase.Pending])
}

func TestAuditLogRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().AuditLogRepository()
	for _, msg := range []string{"first", "second", "third"} {
		entry, err := audit.NewEntry(audit.NewEvent(msg))
		require.NoError(t, err)
		require.NoError(t, repo.Append(ctx, entry))
	}

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Message())
	assert.Equal(t, "first", all[2].Message())

	limited, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "second", limited[1].Message())
}

func TestAuditLogRepository_AppendFollowsTransaction(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	appendIn := func(uow ports.UnitOfWork, msg string) {
		entry, err := audit.NewEntry(audit.NewEvent(msg))
		require.NoError(t, err)
		require.NoError(t, uow.AuditLogRepository().Append(ctx, entry))
	}
	committed := func() []audit.Entry {
		entries, err := factory.Create().AuditLogRepository().List(ctx, 0)
		require.NoError(t, err)
		return entries
	}

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	appendIn(uow, "Order Created: Milk (+10)")
	assert.Empty(t, committed())
	require.NoError(t, uow.Rollback(ctx))
	assert.Empty(t, committed())

	uow = factory.Create()
	require.NoError(t, uow.Begin(ctx))
	appendIn(uow, "Approved: Milk")
	assert.Empty(t, committed())
	require.NoError(t, uow.Commit(ctx))

	entries := committed()
	require.Len(t, entries, 1)
	assert.Equal(t, "Approved: Milk", entries[0].Message())
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().UserRepository()

	u, err := user.RestoreUser("Cherry", "hash", access.Admin)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, u))

	t.Run("duplicate username is a validation error", func(t *testing.T) {
		dup, _ := user.RestoreUser("CHERRY", "other", access.Delivery)
		err := repo.Add(ctx, dup)
		require.ErrorIs(t, err, errs.ErrValidation)
		require.ErrorIs(t, err, user.ErrUsernameTaken)
	})

	t.Run("lookup ignores case", func(t *testing.T) {
		got, err := repo.Get(ctx, "cHeRrY")
		require.NoError(t, err)
		assert.Equal(t, access.Admin, got.Role())
	})

	t.Run("delete removes the account", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "cherry"))
		_, err := repo.Get(ctx, "cherry")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		require.ErrorIs(t, repo.Delete(ctx, "cherry"), errs.ErrObjectNotFound)

		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
