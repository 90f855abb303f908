package ports

import (
	"context"

	"retailops/internal/core/domain/model/kernel"
)

// StockCache is a read-through copy of ledger quantities. It is refreshed after
// every committed stock change and is never the source of truth.
type StockCache interface {
	// Get reports ok=false on a miss.
	Get(ctx context.Context, item kernel.ItemName) (quantity int, ok bool, err error)

	// Set stores quantity unless the cache already holds a newer version of
	// the row, so writers finishing out of order converge on the latest one.
	Set(ctx context.Context, item kernel.ItemName, quantity int, version int64) error
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}
