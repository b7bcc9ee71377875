package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"buildboard/internal/domain"
)

// RedisTotalsCache keeps computed payment totals in Redis. Caching is best
// effort: any Redis failure falls through to recomputing from the database.
type RedisTotalsCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisTotalsCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisTotalsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisTotalsCache{rdb: rdb, ttl: ttl, logger: logger}
}

func totalsKey(companyID, projectID int64) string {
	return fmt.Sprintf("payment_totals:%d:%d", companyID, projectID)
}

func (c *RedisTotalsCache) Get(ctx context.Context, companyID, projectID int64) (*domain.PaymentTotals, bool) {
	raw, err := c.rdb.Get(ctx, totalsKey(companyID, projectID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("totals cache get failed", zap.Error(err))
		}
		return nil, false
	}

	var t domain.PaymentTotals
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, false
	}
	return &t, true
}

func (c *RedisTotalsCache) Set(ctx context.Context, companyID, projectID int64, t *domain.PaymentTotals) {
	raw, err := json.Marshal(t)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, totalsKey(companyID, projectID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("totals cache set failed", zap.Error(err))
	}
}

func (c *RedisTotalsCache) Invalidate(ctx context.Context, companyID, projectID int64) {
	if err := c.rdb.Del(ctx, totalsKey(companyID, projectID)).Err(); err != nil {
		c.logger.Warn("totals cache invalidate failed", zap.Error(err))
	}
}

// NoopTotalsCache is used when Redis is not configured.
type NoopTotalsCache struct{}

func (NoopTotalsCache) Get(ctx context.Context, companyID, projectID int64) (*domain.PaymentTotals, bool) {
	return nil, false
}
func (NoopTotalsCache) Set(ctx context.Context, companyID, projectID int64, t *domain.PaymentTotals) {
}
func (NoopTotalsCache) Invalidate(ctx context.Context, companyID, projectID int64) {}
