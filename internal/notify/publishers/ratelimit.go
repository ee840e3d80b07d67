package publishers

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/conferencebook/weather-service/internal/notify"
)

// RateLimitedPublisher wraps a Publisher with a token-bucket limit so a
// burst of booking events cannot flood the downstream channel.
type RateLimitedPublisher struct {
	publisher notify.Publisher
	limiter   *rate.Limiter
	name      string
}

// NewRateLimitedPublisher creates a rate limited publisher.
// rps is the maximum publishes per second allowed (can be fractional for
// less than one publish per second), burst the maximum burst size.
func NewRateLimitedPublisher(publisher notify.Publisher, rps float64, burst int) *RateLimitedPublisher {
	return &RateLimitedPublisher{
		publisher: publisher,
		limiter:   rate.NewLimiter(rate.Limit(rps), burst),
		name:      fmt.Sprintf("%s [Rate Limited]", publisher.Name()),
	}
}

func (r *RateLimitedPublisher) Name() string {
	return r.name
}

// Publish forwards the message once the limiter grants permission.
func (r *RateLimitedPublisher) Publish(ctx context.Context, msg notify.Message) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.publisher.Publish(ctx, msg)
}

var _ notify.Publisher = (*RateLimitedPublisher)(nil)
