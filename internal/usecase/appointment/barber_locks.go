package appointment

import (
	"context"
	"sync"
)

// barberLocks lets one booking per barber at a time hold a store
// connection from this process. Other processes are serialized by the
// store's row lock. Entries are never removed; the map holds at most one
// channel per barber.
type barberLocks struct {
	mu    sync.Mutex
	slots map[uint]chan struct{}
}

func newBarberLocks() *barberLocks {
	return &barberLocks{slots: make(map[uint]chan struct{})}
}

func (l *barberLocks) acquire(ctx context.Context, barberID uint) (func(), error) {
	l.mu.Lock()
	ch, ok := l.slots[barberID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[barberID] = ch
	}
	l.mu.Unlock()

	release := func() { <-ch }

	// A free lock is taken even when ctx is already done.
	select {
	case ch <- struct{}{}:
		return release, nil
	default:
	}

	select {
	case ch <- struct{}{}:
		return release, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
