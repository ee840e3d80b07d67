package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturePublisher records published messages and can be told to fail some
// of them.
type capturePublisher struct {
	published []Message
	failWhen  func(Message) bool
}

func (p *capturePublisher) Name() string { return "capture" }

func (p *capturePublisher) Publish(_ context.Context, msg Message) (string, error) {
	if p.failWhen != nil && p.failWhen(msg) {
		return "", errors.New("channel unavailable")
	}
	p.published = append(p.published, msg)
	return fmt.Sprintf("msg-%d", len(p.published)), nil
}

func TestDispatcherFlushPublishesInOrder(t *testing.T) {
	pub := &capturePublisher{}
	d := NewDispatcher(NewQueue(0), pub, time.Minute, 10)

	for i := 0; i < 3; i++ {
		require.NoError(t, d.Enqueue(Event{
			EventType: EventBookingCreated,
			UserEmail: fmt.Sprintf("user%d@example.com", i),
			BookingID: fmt.Sprintf("bk_%d", i),
		}))
	}
	assert.Equal(t, 3, d.Pending())

	processed, failed := d.Flush(context.Background())
	assert.Equal(t, 3, processed)
	assert.Equal(t, 0, failed)
	assert.Equal(t, 0, d.Pending())

	require.Len(t, pub.published, 3)
	for i, msg := range pub.published {
		assert.Equal(t, fmt.Sprintf("user%d@example.com", i), msg.Attributes["userEmail"])
		assert.Contains(t, msg.Body, fmt.Sprintf("Booking Reference: bk_%d", i))
	}
}

func TestDispatcherFlushCountsFailures(t *testing.T) {
	pub := &capturePublisher{
		failWhen: func(msg Message) bool {
			return strings.HasPrefix(msg.Attributes["userEmail"], "broken")
		},
	}
	d := NewDispatcher(NewQueue(0), pub, time.Minute, 10)

	require.NoError(t, d.Enqueue(Event{EventType: EventBookingCreated, UserEmail: "ok1@example.com"}))
	require.NoError(t, d.Enqueue(Event{EventType: EventBookingCreated, UserEmail: "broken@example.com"}))
	require.NoError(t, d.Enqueue(Event{EventType: EventBookingCancelled, UserEmail: "ok2@example.com"}))

	processed, failed := d.Flush(context.Background())
	assert.Equal(t, 2, processed)
	assert.Equal(t, 1, failed)

	// Failed events are dropped, not requeued.
	assert.Equal(t, 0, d.Pending())
	require.Len(t, pub.published, 2)
	assert.Equal(t, "ok1@example.com", pub.published[0].Attributes["userEmail"])
	assert.Equal(t, "ok2@example.com", pub.published[1].Attributes["userEmail"])
}

func TestDispatcherFlushHonorsBatchSize(t *testing.T) {
	pub := &capturePublisher{}
	d := NewDispatcher(NewQueue(0), pub, time.Minute, 2)

	for i := 0; i < 5; i++ {
		require.NoError(t, d.Enqueue(Event{EventType: EventBookingCreated, UserEmail: "user@example.com"}))
	}

	processed, failed := d.Flush(context.Background())
	assert.Equal(t, 2, processed)
	assert.Equal(t, 0, failed)
	assert.Equal(t, 3, d.Pending())

	processed, _ = d.Flush(context.Background())
	assert.Equal(t, 2, processed)
	assert.Equal(t, 1, d.Pending())
}

func TestDispatcherEnqueueRejectsWhenFull(t *testing.T) {
	d := NewDispatcher(NewQueue(1), &capturePublisher{}, time.Minute, 10)

	require.NoError(t, d.Enqueue(Event{UserEmail: "a@example.com"}))
	err := d.Enqueue(Event{UserEmail: "b@example.com"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrQueueFull))
}

func TestDispatcherStartStop(t *testing.T) {
	d := NewDispatcher(NewQueue(0), &capturePublisher{}, time.Hour, 10)

	require.NoError(t, d.Start())
	d.Stop()
}
