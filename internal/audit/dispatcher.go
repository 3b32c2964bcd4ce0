package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	ActionAppointmentCreated  = "appointment_created"
	ActionAppointmentConflict = "appointment_conflict"
)

type Event struct {
	LocationID uint
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

type Writer interface {
	Log(ctx context.Context, ev Event) error
}

// Dispatcher persists events on a single background worker.
type Dispatcher struct {
	writer  Writer
	logger  *slog.Logger
	queue   chan Event
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(writer Writer, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}

	d := &Dispatcher{
		writer:  writer,
		logger:  logger,
		queue:   make(chan Event, 100),
		timeout: 5 * time.Second,
		done:    make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.writer.Log(ctx, ev); err != nil {
			d.logger.Error("audit write failed", "action", ev.Action, "err", err)
		}
		cancel()
	}
}

// Dispatch never blocks; a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits for queued ones to be written
// or for ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
