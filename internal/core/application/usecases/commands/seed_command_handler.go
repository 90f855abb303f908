package commands

import (
	"context"
	"errors"
	"time"

	"retailops/internal/core/domain/model/access"
	"retailops/internal/core/domain/model/audit"
	"retailops/internal/core/domain/model/kernel"
	"retailops/internal/core/domain/model/purchase"
	"retailops/internal/core/domain/model/user"
	"retailops/internal/core/ports"
	"retailops/internal/pkg/errs"

	"github.com/rs/zerolog"
)

const seedPassword = "123"

var seedUsers = []struct {
	username string
	role     access.Role
}{
	{"cherry", access.Admin},
	{"rajie", access.Purchasing},
	{"janex", access.Delivery},
	{"rhaa", access.Inventory},
	{"norman", access.Admin},
}

var seedStock = []struct {
	item     string
	quantity int
}{
	{"Coffee Beans", 30},
	{"Milk", 25},
	{"Sugar", 40},
	{"Paper Cups", 100},
	{"Syrup (Caramel)", 10},
	{"Syrup (Choco)", 10},
	{"Matcha Powder", 15},
	{"Croissant", 10},
	{"Bagel", 8},
	{"Cheesecake", 5},
}

var seedPurchases = []struct {
	item     string
	quantity int
	supplier string
}{
	{"Coffee Beans", 20, "Local Roaster"},
	{"Milk", 20, "Dairy Supplier"},
}

// SeedCommandHandler writes the demo data in one transaction. Seeded
// purchases are already Approved history and do not move stock. The only
// audit entry is "System Loaded".
type SeedCommandHandler struct {
	uowFactory SeedUoWFactory
	hasher     ports.PasswordHasher
	logger     zerolog.Logger
}

func NewSeedCommandHandler(uowFactory SeedUoWFactory, hasher ports.PasswordHasher, logger zerolog.Logger) SeedCommandHandler {
	return SeedCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		logger:     logger.With().Str("command", "seed").Logger(),
	}
}

// Handle reports whether anything was written.
func (h SeedCommandHandler) Handle(ctx context.Context, cmd SeedCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	hash, err := h.hasher.Hash(seedPassword)
	if err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()

	count, err := users.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 && !cmd.Force() {
		h.logger.Info().Int("users", count).Msg("seed skipped, accounts exist")
		return false, nil
	}

	for _, s := range seedUsers {
		if err = h.seedUser(ctx, users, s.username, hash, s.role); err != nil {
			return false, err
		}
	}

	stock := uow.StockRepository()
	for _, s := range seedStock {
		row, getErr := stock.GetForUpdate(ctx, kernel.MustItemName(s.item))
		if getErr != nil {
			return false, getErr
		}
		row.Adjust(s.quantity - row.Quantity())
		if err = stock.Save(ctx, row); err != nil {
			return false, err
		}
	}

	orders := uow.PurchaseOrderRepository()
	now := time.Now()
	for i, p := range seedPurchases {
		supplier, nameErr := kernel.NewName("supplier", p.supplier)
		if nameErr != nil {
			return false, nameErr
		}
		order, restoreErr := purchase.RestoreOrder(kernel.NewUUID(), kernel.MustItemName(p.item), p.quantity,
			supplier, purchase.Approved, now.Add(time.Duration(i)*time.Millisecond))
		if restoreErr != nil {
			return false, restoreErr
		}
		if err = orders.Add(ctx, order); err != nil {
			return false, err
		}
	}

	entry, err := audit.NewEntry(audit.NewEvent("System Loaded"))
	if err != nil {
		return false, err
	}
	if err = uow.AuditLogRepository().Append(ctx, entry); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	h.logger.Info().
		Int("users", len(seedUsers)).
		Int("items", len(seedStock)).
		Int("purchases", len(seedPurchases)).
		Msg("demo data loaded")
	return true, nil
}

// seedUser skips accounts that already exist so a forced seed is repeatable.
// The lookup comes first because a failed insert aborts a postgres transaction.
func (h SeedCommandHandler) seedUser(
	ctx context.Context,
	repo ports.UserRepository,
	username, hash string,
	role access.Role,
) error {
	_, err := repo.Get(ctx, username)
	if err == nil {
		h.logger.Debug().Str("username", username).Msg("account exists")
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	u, err := user.NewUser(username, hash, role)
	if err != nil {
		return err
	}
	return repo.Add(ctx, u)
}
