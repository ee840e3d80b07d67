package notify

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Dispatcher accepts booking events and periodically publishes the rendered
// notifications in batches.
type Dispatcher struct {
	scheduler *gocron.Scheduler
	queue     *Queue
	publisher Publisher
	interval  time.Duration
	batchSize int
}

// NewDispatcher creates a Dispatcher that flushes up to batchSize queued
// events every interval through the given publisher.
func NewDispatcher(queue *Queue, publisher Publisher, interval time.Duration, batchSize int) *Dispatcher {
	s := gocron.NewScheduler(time.UTC)
	return &Dispatcher{
		scheduler: s,
		queue:     queue,
		publisher: publisher,
		interval:  interval,
		batchSize: batchSize,
	}
}

// Enqueue accepts an event for the next flush.
func (d *Dispatcher) Enqueue(evt Event) error {
	return d.queue.Enqueue(evt)
}

// Pending reports the number of events waiting to be published.
func (d *Dispatcher) Pending() int {
	return d.queue.Len()
}

// Start schedules the periodic flush job and starts the underlying scheduler.
func (d *Dispatcher) Start() error {
	seconds := int(d.interval.Seconds())
	if seconds <= 0 {
		seconds = 30
	}

	// Flush budget: one cadence interval, 30 seconds minimum.
	budget := d.interval
	if budget < 30*time.Second {
		budget = 30 * time.Second
	}

	_, err := d.scheduler.Every(seconds).Seconds().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), budget)
		defer cancel()

		processed, failed := d.Flush(ctx)
		if processed > 0 || failed > 0 {
			log.Printf("notify: flush via %s complete: processed=%d errors=%d", d.publisher.Name(), processed, failed)
		}
	})
	if err != nil {
		return err
	}

	d.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler. Queued events stay pending.
func (d *Dispatcher) Stop() {
	if d.scheduler != nil {
		d.scheduler.Stop()
	}
}

// Flush drains one batch and publishes each event in arrival order. A
// failed publish is logged and counted but does not block the rest of the
// batch.
func (d *Dispatcher) Flush(ctx context.Context) (processed, failed int) {
	for _, evt := range d.queue.Drain(d.batchSize) {
		msg := Compose(evt)

		id, err := d.publisher.Publish(ctx, msg)
		if err != nil {
			log.Printf("notify: publish failed for %s to %s: %v", msg.Attributes["eventType"], msg.Attributes["userEmail"], err)
			failed++
			continue
		}

		log.Printf("notify: published %q, message id %s", msg.Subject, id)
		processed++
	}
	return processed, failed
}
