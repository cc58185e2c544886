package geo

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrLockTimeout reports that an index hold was not acquired within its
// configured bound. The condition is transient; callers may retry.
var ErrLockTimeout = errors.New("index lock acquisition timeout")

// maxReaders bounds the number of concurrent read holds on one index.
const maxReaders = 64

// rwGuard is a reader/writer discipline with time-bounded acquisition.
// Readers take one unit, writers take all of them, so a writer excludes
// every other hold. Acquisition respects both the caller's context and the
// per-guard bound; exceeding the bound yields ErrLockTimeout, while a
// caller-side cancellation surfaces as the context's own error.
type rwGuard struct {
	sem *semaphore.Weighted
}

func newRWGuard() *rwGuard {
	return &rwGuard{sem: semaphore.NewWeighted(maxReaders)}
}

func (g *rwGuard) acquire(ctx context.Context, units int64, bound time.Duration) error {
	boundCtx, cancel := context.WithTimeout(ctx, bound)
	defer cancel()

	if err := g.sem.Acquire(boundCtx, units); err != nil {
		// Distinguish the caller's deadline from the guard's own bound.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrLockTimeout
	}
	return nil
}

// RLock acquires a shared hold within bound.
func (g *rwGuard) RLock(ctx context.Context, bound time.Duration) error {
	return g.acquire(ctx, 1, bound)
}

// RUnlock releases a shared hold.
func (g *rwGuard) RUnlock() {
	g.sem.Release(1)
}

// Lock acquires the exclusive hold within bound.
func (g *rwGuard) Lock(ctx context.Context, bound time.Duration) error {
	return g.acquire(ctx, maxReaders, bound)
}

// Unlock releases the exclusive hold.
func (g *rwGuard) Unlock() {
	g.sem.Release(maxReaders)
}
