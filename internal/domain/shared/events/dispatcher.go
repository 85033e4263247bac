package events

import (
	"errors"
	"fmt"
	"sync"

	"github.com/egest-app/egest/internal/shared/goroutine"
	"github.com/egest-app/egest/internal/shared/logger"
)

var (
	ErrDispatcherNotRunning = errors.New("event dispatcher is not running")
	ErrDispatcherFull       = errors.New("event channel is full")
)

const defaultBufferSize = 100

// InMemoryEventDispatcher delivers events asynchronously to in-process
// handlers. Handlers of one event run sequentially in subscription order;
// events are delivered in publish order.
type InMemoryEventDispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
	running  bool
	eventCh  chan DomainEvent
	stopCh   chan struct{}
	wg       sync.WaitGroup
	logger   logger.Interface
}

func NewInMemoryEventDispatcher(bufferSize int, log logger.Interface) *InMemoryEventDispatcher {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &InMemoryEventDispatcher{
		handlers: make(map[string][]EventHandler),
		eventCh:  make(chan DomainEvent, bufferSize),
		stopCh:   make(chan struct{}),
		logger:   log,
	}
}

// Publish never blocks; it fails when the buffer is full.
func (d *InMemoryEventDispatcher) Publish(event DomainEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.running {
		return ErrDispatcherNotRunning
	}
	select {
	case d.eventCh <- event:
		return nil
	default:
		return ErrDispatcherFull
	}
}

func (d *InMemoryEventDispatcher) PublishAll(events []DomainEvent) error {
	for _, event := range events {
		if err := d.Publish(event); err != nil {
			return fmt.Errorf("failed to publish event %s: %w", event.GetEventType(), err)
		}
	}
	return nil
}

func (d *InMemoryEventDispatcher) Subscribe(eventType string, handler EventHandler) error {
	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

func (d *InMemoryEventDispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return fmt.Errorf("event dispatcher is already running")
	}
	d.running = true
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.loop()
	}()
	return nil
}

// Stop drains queued events before returning.
func (d *InMemoryEventDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return ErrDispatcherNotRunning
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.wg.Wait()
	return nil
}

func (d *InMemoryEventDispatcher) loop() {
	for {
		select {
		case event := <-d.eventCh:
			d.dispatch(event)
		case <-d.stopCh:
			for {
				select {
				case event := <-d.eventCh:
					d.dispatch(event)
				default:
					return
				}
			}
		}
	}
}

func (d *InMemoryEventDispatcher) dispatch(event DomainEvent) {
	d.mu.RLock()
	handlers := d.handlers[event.GetEventType()]
	d.mu.RUnlock()

	for _, h := range handlers {
		d.invoke(h, event)
	}
}

func (d *InMemoryEventDispatcher) invoke(h EventHandler, event DomainEvent) {
	defer goroutine.Recover(d.logger, "event:"+event.GetEventType())
	if err := h.Handle(event); err != nil {
		d.logger.Errorw("event handler failed",
			"event_type", event.GetEventType(),
			"aggregate_id", event.GetAggregateID(),
			"error", err,
		)
	}
}
