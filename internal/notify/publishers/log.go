package publishers

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/conferencebook/weather-service/internal/notify"
)

// LogPublisher records notifications on the process log. It stands in for
// a real channel when no topic endpoint is configured, so the rest of the
// pipeline behaves as in production.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Name() string {
	return "log"
}

func (p *LogPublisher) Publish(_ context.Context, msg notify.Message) (string, error) {
	id := uuid.NewString()
	log.Printf("notify: [%s] %s (eventType=%s, userEmail=%s)",
		id, msg.Subject, msg.Attributes["eventType"], msg.Attributes["userEmail"])
	return id, nil
}

var _ notify.Publisher = (*LogPublisher)(nil)
