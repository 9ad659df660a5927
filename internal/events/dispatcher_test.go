package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishReachesAllSubscribers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()

	var first, second int
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		first++
		return nil
	})
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		second++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventUserRegistered}))
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestDispatcher_TypeIsolation(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()

	var called bool
	d.Subscribe(EventInstitutionCreated, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventUserRegistered}))
	assert.False(t, called)
}

func TestDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()

	var reached bool
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		reached = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventUserRegistered}))
	assert.True(t, reached)
}
