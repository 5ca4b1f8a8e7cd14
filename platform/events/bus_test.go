package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type testEvent struct {
	BaseEvent
	name string
}

func (e testEvent) EventName() string { return e.name }

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewInMemoryBus(nil)

	var wg sync.WaitGroup
	var mu sync.Mutex
	received := 0

	for i := 0; i < 3; i++ {
		wg.Add(1)
		bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
			defer wg.Done()
			mu.Lock()
			received++
			mu.Unlock()
			return nil
		}))
	}

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "test.event"})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handlers did not complete in time")
	}

	mu.Lock()
	defer mu.Unlock()
	if received != 3 {
		t.Errorf("received = %d, want 3", received)
	}
}

func TestPublishIgnoresUnrelatedEvents(t *testing.T) {
	bus := NewInMemoryBus(nil)

	called := make(chan struct{}, 1)
	bus.Subscribe("wanted.event", HandlerFunc(func(ctx context.Context, event Event) error {
		called <- struct{}{}
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "other.event"})

	select {
	case <-called:
		t.Fatal("handler called for an event it never subscribed to")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishSurvivesPanickingHandler(t *testing.T) {
	bus := NewInMemoryBus(nil)

	healthy := make(chan struct{}, 1)
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
		panic("boom")
	}))
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
		healthy <- struct{}{}
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "test.event"})

	select {
	case <-healthy:
	case <-time.After(time.Second):
		t.Fatal("healthy handler never ran")
	}
}

func TestPublishSyncJoinsErrors(t *testing.T) {
	bus := NewInMemoryBus(nil)

	first := errors.New("first failure")
	second := errors.New("second failure")
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
		return first
	}))
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
		return second
	}))
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
		return nil
	}))

	err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "test.event"})

	if !errors.Is(err, first) || !errors.Is(err, second) {
		t.Errorf("joined error missing a failure: %v", err)
	}
}

func TestPublishSyncNoHandlers(t *testing.T) {
	bus := NewInMemoryBus(nil)

	if err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent(), name: "nobody.listens"}); err != nil {
		t.Errorf("PublishSync() = %v, want nil", err)
	}
}
