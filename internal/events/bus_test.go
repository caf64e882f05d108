package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBusPublish(t *testing.T) {
	bus := NewEventBus[any]()
	a := bus.Subscribe()
	b := bus.Subscribe()

	bus.Publish(ProductViewed{ProductID: 3})

	assert.Equal(t, ProductViewed{ProductID: 3}, <-a)
	assert.Equal(t, ProductViewed{ProductID: 3}, <-b)
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := NewEventBus[any]()
	ch := bus.Subscribe()

	bus.Unsubscribe(ch)
	bus.Unsubscribe(ch)
	bus.Publish(ScrollReset{Page: 2})

	_, open := <-ch
	assert.False(t, open)
}

func TestEventBusDropsWhenFull(t *testing.T) {
	bus := NewEventBus[int]()
	ch := bus.Subscribe()

	for i := 0; i < cap(ch)+10; i++ {
		bus.Publish(i)
	}

	assert.Len(t, ch, cap(ch))
	assert.Equal(t, 0, <-ch)
}
