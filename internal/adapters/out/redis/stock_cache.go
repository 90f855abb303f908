// Package redis mirrors ledger quantities into Redis so hot reads skip the
// database. Storage stays the source of truth.
package redis

import (
	"context"
	"errors"
	"time"

	"retailops/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const stockKeyPrefix = "retailops:stock:"

// setIfNewer keeps the entry with the highest row version. KEYS[1] is a hash
// of quantity and version; ARGV is quantity, version, ttl in milliseconds.
// Returns 1 when the entry was written.
var setIfNewer = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'version')
local ttl = tonumber(ARGV[3])
if current then
	current = tonumber(current)
	if current > tonumber(ARGV[2]) then
		return 0
	end
	if current == tonumber(ARGV[2]) then
		if ttl > 0 then
			redis.call('PEXPIRE', KEYS[1], ttl)
		end
		return 0
	end
end
redis.call('HSET', KEYS[1], 'quantity', ARGV[1], 'version', ARGV[2])
if ttl > 0 then
	redis.call('PEXPIRE', KEYS[1], ttl)
end
return 1
`)

// StockCache implements ports.StockCache.
type StockCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStockCache keeps entries for ttl; zero means no expiry.
func NewStockCache(client *redis.Client, ttl time.Duration) *StockCache {
	return &StockCache{client: client, ttl: ttl}
}

func (c *StockCache) Get(ctx context.Context, item kernel.ItemName) (int, bool, error) {
	quantity, err := c.client.HGet(ctx, stockKey(item), "quantity").Int()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return quantity, true, nil
}

// Set writes quantity only when version is newer than the cached one. An equal
// version just extends the expiry.
func (c *StockCache) Set(ctx context.Context, item kernel.ItemName, quantity int, version int64) error {
	return setIfNewer.Run(ctx, c.client, []string{stockKey(item)}, quantity, version, c.ttl.Milliseconds()).Err()
}

func stockKey(item kernel.ItemName) string {
	return stockKeyPrefix + item.String()
}
