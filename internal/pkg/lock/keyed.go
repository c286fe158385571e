// Package lock provides in-process mutual exclusion scoped to a key.
package lock

import (
	"context"
	"sync"
)

// Keyed hands out one mutex per key and drops it once nobody holds or waits
// for it.
type Keyed struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	ch   chan struct{}
	refs int
}

func NewKeyed() *Keyed {
	return &Keyed{locks: make(map[string]*entry)}
}

// Lock blocks until the key is free or ctx is done. The returned func
// releases the key.
func (k *Keyed) Lock(ctx context.Context, key string) (func(), error) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		k.release(key, e)
		return nil, ctx.Err()
	}

	return func() {
		<-e.ch
		k.release(key, e)
	}, nil
}

func (k *Keyed) release(key string, e *entry) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
}

// WithEmployeeLock runs fn while holding the lock for employeeID.
func (k *Keyed) WithEmployeeLock(ctx context.Context, employeeID string, fn func(ctx context.Context) error) error {
	unlock, err := k.Lock(ctx, employeeID)
	if err != nil {
		return err
	}
	defer unlock()
	return fn(ctx)
}
