package audit

import (
	"context"
	"log/slog"
	"sync"

	"github.com/BruksfildServices01/vet-clinic/internal/middleware"
)

const defaultQueueSize = 100

type Event struct {
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
	RequestID string
}

// Sink persists one event. *Logger is the production sink.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sink  Sink
	log   *slog.Logger
	queue chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(sink Sink, log *slog.Logger, size int) *Dispatcher {
	if size <= 0 {
		size = defaultQueueSize
	}
	if log == nil {
		log = slog.Default()
	}

	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, size),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.log.Error("audit error",
				slog.String("action", ev.Action),
				slog.String("request_id", ev.RequestID),
				slog.Any("error", err),
			)
		}
	}
}

// Dispatch never blocks: a full queue drops the event so the API is
// never held up by auditing. A nil dispatcher discards everything.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	if d == nil {
		return
	}
	if ev.RequestID == "" && ctx != nil {
		ev.RequestID = middleware.RequestIDFromContext(ctx)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("audit dispatcher closed, dropping event", slog.String("action", ev.Action))
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", slog.String("action", ev.Action))
	}
}

// Close stops accepting events and waits for the queue to drain or ctx
// to end.
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
