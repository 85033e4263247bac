package events

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egest-app/egest/internal/shared/logger"
)

func newEvent(eventType, aggregateID string) BaseEvent {
	return BaseEvent{AggregateID: aggregateID, EventType: eventType, OccurredAt: time.Now(), Version: 1}
}

func TestDispatcher_DeliversInOrderAndDrainsOnStop(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, logger.NewNopLogger())

	var mu sync.Mutex
	var got []string
	require.NoError(t, d.Subscribe("doc.uploaded", HandlerFunc(func(e DomainEvent) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.GetAggregateID())
		return nil
	})))

	require.NoError(t, d.Start())
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, d.Publish(newEvent("doc.uploaded", id)))
	}
	require.NoError(t, d.Publish(newEvent("other", "x")))
	require.NoError(t, d.Stop())

	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestDispatcher_PublishWhenStopped(t *testing.T) {
	d := NewInMemoryEventDispatcher(1, logger.NewNopLogger())

	err := d.Publish(newEvent("doc.uploaded", "a"))
	assert.ErrorIs(t, err, ErrDispatcherNotRunning)
	assert.ErrorIs(t, d.Stop(), ErrDispatcherNotRunning)
}

func TestDispatcher_HandlerErrorsAndPanicsDoNotStopDelivery(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, logger.NewNopLogger())

	var calls int
	require.NoError(t, d.Subscribe("e", HandlerFunc(func(DomainEvent) error { panic("boom") })))
	require.NoError(t, d.Subscribe("e", HandlerFunc(func(DomainEvent) error { return errors.New("fail") })))
	require.NoError(t, d.Subscribe("e", HandlerFunc(func(DomainEvent) error { calls++; return nil })))

	require.NoError(t, d.Start())
	require.NoError(t, d.Publish(newEvent("e", "1")))
	require.NoError(t, d.Publish(newEvent("e", "2")))
	require.NoError(t, d.Stop())

	assert.Equal(t, 2, calls)
}

func TestDispatcher_SubscribeValidation(t *testing.T) {
	d := NewInMemoryEventDispatcher(0, logger.NewNopLogger())
	assert.Error(t, d.Subscribe("", HandlerFunc(func(DomainEvent) error { return nil })))
	assert.Error(t, d.Subscribe("e", nil))
}
