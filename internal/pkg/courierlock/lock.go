// Package courierlock holds the short-lived per-courier offer lock. A courier
// selected by one order's assignment flow must not be offered to another order
// until the offer is accepted, released, or expires.
package courierlock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Locker struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Locker {
	return &Locker{
		client: client,
		ttl:    ttl,
	}
}

func key(courierID int64) string {
	return fmt.Sprintf("assignment:offer:courier:%d", courierID)
}

// Acquire takes the offer lock for courierID on behalf of orderID. It returns
// false without error when another order already holds the lock.
func (l *Locker) Acquire(ctx context.Context, courierID int64, orderID string) (bool, error) {
	ok, err := l.client.SetNX(ctx, key(courierID), orderID, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire offer lock: %w", err)
	}
	return ok, nil
}

// Release frees the lock only when orderID still holds it, so a late release
// cannot drop a lock re-acquired by a newer offer.
func (l *Locker) Release(ctx context.Context, courierID int64, orderID string) error {
	const script = `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("DEL", KEYS[1])
		end
		return 0
	`
	err := l.client.Eval(ctx, script, []string{key(courierID)}, orderID).Err()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("release offer lock: %w", err)
	}
	return nil
}
