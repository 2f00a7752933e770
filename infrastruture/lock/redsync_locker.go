// Package lock provides distributed mutexes backed by Redis.
package lock

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-level/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const defaultExpiry = 5 * time.Second

var ErrLockLost = errors.New("lock expired before release")

// RedsyncLocker hands out redsync mutexes keyed by name.
type RedsyncLocker struct {
	locker *redsync.Redsync
	expiry time.Duration
}

var _ i.Locker = &RedsyncLocker{}

// NewRedsyncLocker creates a locker on the given Redis client. Locks auto-expire after expiry
// so a crashed holder cannot block a key forever; zero uses five seconds.
func NewRedsyncLocker(client *redis.Client, expiry time.Duration) *RedsyncLocker {
	if expiry <= 0 {
		expiry = defaultExpiry
	}
	pool := goredis.NewPool(client)
	return &RedsyncLocker{
		locker: redsync.New(pool),
		expiry: expiry,
	}
}

// Lock implements i.Locker.
func (r *RedsyncLocker) Lock(ctx context.Context, key string) (func() error, error) {
	mutex := r.locker.NewMutex(key, redsync.WithExpiry(r.expiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() error {
		ok, err := mutex.UnlockContext(context.Background())
		if err != nil {
			return err
		}
		if !ok {
			return ErrLockLost
		}
		return nil
	}, nil
}
