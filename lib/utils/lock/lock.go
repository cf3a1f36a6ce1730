package lock

import (
	"context"
	"sync"
	"time"
)

var lockMap sync.Map

// WithDelay runs safeCode while holding an in-process lock on key, waiting up
// to wait to acquire it. Returns success=false when the lock could not be
// taken in time. Used as a cheap serialization layer in front of the store's
// own compare-and-swap guards.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	isTimeout := time.After(wait)
	for {
		if _, loaded := lockMap.LoadOrStore(key, true); !loaded {
			defer lockMap.Delete(key)
			return true, safeCode()
		}
		select {
		case <-isTimeout:
			return false, nil
		case <-ctx.Done():
			return false, nil
		default:
			time.Sleep(50 * time.Millisecond)
		}
	}
}
