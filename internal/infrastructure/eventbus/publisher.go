package eventbus

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"microblog-backend/internal/shared/events"
	"microblog-backend/pkg/workerpool"
)

// InMemoryPublisher routes events to registered handlers through a bounded
// worker pool. Producers return as soon as scheduling succeeds; handlers run
// asynchronously with no ordering guarantee between them.
type InMemoryPublisher struct {
	pool *workerpool.Pool

	mu       sync.RWMutex
	handlers map[events.EventKind][]events.Handler
}

func NewInMemoryPublisher(pool *workerpool.Pool) *InMemoryPublisher {
	return &InMemoryPublisher{
		pool:     pool,
		handlers: make(map[events.EventKind][]events.Handler),
	}
}

// Publish schedules one pool task per handler registered for the event's
// kind. No registered handler is a logged no-op. A saturated pool fails the
// submission synchronously; handlers already scheduled for this event stay
// scheduled.
func (p *InMemoryPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.RLock()
	registered := make([]events.Handler, len(p.handlers[event.Kind()]))
	copy(registered, p.handlers[event.Kind()])
	p.mu.RUnlock()

	if len(registered) == 0 {
		log.Warn().
			Str("event_kind", string(event.Kind())).
			Msg("No handler registered for event")
		return nil
	}

	// Handlers outlive the request that produced the event, so they run on
	// a context detached from the caller's cancellation.
	handlerCtx := context.WithoutCancel(ctx)

	for _, handler := range registered {
		task := func() {
			if err := handler.Handle(handlerCtx, event); err != nil {
				log.Error().
					Err(err).
					Str("event_kind", string(event.Kind())).
					Msg("Event handler failed")
			}
		}

		if err := p.pool.Submit(task); err != nil {
			return fmt.Errorf("schedule handler for %s: %w", event.Kind(), err)
		}
	}

	return nil
}

// AddListener registers a handler under an event kind. Duplicate
// registrations are kept; registration is mutually exclusive with the
// registry reads done by Publish.
func (p *InMemoryPublisher) AddListener(kind events.EventKind, handler events.Handler) {
	p.mu.Lock()
	p.handlers[kind] = append(p.handlers[kind], handler)
	p.mu.Unlock()

	log.Info().
		Str("event_kind", string(kind)).
		Str("handler", fmt.Sprintf("%T", handler)).
		Msg("Event handler registered")
}

// Shutdown stops accepting new work and drains the pool within the context
// deadline; whatever is still outstanding afterwards is abandoned.
func (p *InMemoryPublisher) Shutdown(ctx context.Context) error {
	return p.pool.Shutdown(ctx)
}
