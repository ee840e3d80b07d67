package publishers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/conferencebook/weather-service/internal/notify"
)

// WebhookPublisher delivers rendered notifications to an HTTP topic
// endpoint as JSON.
type WebhookPublisher struct {
	name     string
	topicURL string
	client   *http.Client
	backoff  BackoffConfig
	circuit  *gobreaker.CircuitBreaker
}

func NewWebhookPublisher(client *http.Client, topicURL string) *WebhookPublisher {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "notify-webhook",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &WebhookPublisher{
		name:     "webhook",
		topicURL: topicURL,
		client:   client,
		backoff: BackoffConfig{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		circuit: cb,
	}
}

func (p *WebhookPublisher) Name() string {
	return p.name
}

// Publish POSTs the message to the topic endpoint and returns the
// channel-assigned message id. When the endpoint does not echo an id back,
// one is generated locally so callers always get a reference.
func (p *WebhookPublisher) Publish(ctx context.Context, msg notify.Message) (string, error) {
	if p.topicURL == "" {
		return "", fmt.Errorf("webhook topic url is not configured")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}

	buildRequest := func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, p.topicURL, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}

	resp, err := publishWithResilience(ctx, p.client, p.backoff, p.circuit, buildRequest)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var ack struct {
		MessageID string `json:"messageId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil || ack.MessageID == "" {
		return uuid.NewString(), nil
	}
	return ack.MessageID, nil
}

var _ notify.Publisher = (*WebhookPublisher)(nil)
