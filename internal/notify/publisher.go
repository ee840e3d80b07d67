package notify

import "context"

// Message is a rendered notification ready for delivery: a subject and
// plain-text body, plus routing attributes (eventType, userEmail).
type Message struct {
	Subject    string            `json:"subject"`
	Body       string            `json:"message"`
	Attributes map[string]string `json:"attributes"`
}

// Publisher delivers rendered messages to a notification channel and
// returns the channel-assigned message identifier.
type Publisher interface {
	Name() string
	Publish(ctx context.Context, msg Message) (string, error)
}
