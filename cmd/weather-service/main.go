package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/conferencebook/weather-service/internal/api/http"
	"github.com/conferencebook/weather-service/internal/config"
	"github.com/conferencebook/weather-service/internal/notify"
	"github.com/conferencebook/weather-service/internal/notify/publishers"
	"github.com/conferencebook/weather-service/internal/weather"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Core forecast service over the built-in location catalog.
	service := weather.NewService(weather.DefaultCatalog())

	// Shared HTTP client for outbound publish calls.
	httpClient := &http.Client{
		Timeout: cfg.PublishTimeout,
	}

	// Publisher with resilience (backoff + circuit breaker) when a topic
	// endpoint is configured, process log otherwise.
	var publisher notify.Publisher
	if cfg.NotifyTopicURL != "" {
		publisher = publishers.NewWebhookPublisher(httpClient, cfg.NotifyTopicURL)
	} else {
		log.Println("NOTIFY_TOPIC_URL not set; notifications go to the process log")
		publisher = publishers.NewLogPublisher()
	}
	if cfg.NotifyRateLimit > 0 {
		publisher = publishers.NewRateLimitedPublisher(publisher, cfg.NotifyRateLimit, cfg.NotifyBurst)
	}

	// Dispatcher that periodically flushes queued booking events.
	queue := notify.NewQueue(cfg.NotifyMaxPending)
	dispatcher := notify.NewDispatcher(queue, publisher, cfg.NotifyFlushInterval, cfg.NotifyBatchSize)
	if err := dispatcher.Start(); err != nil {
		log.Fatalf("failed to start notification dispatcher: %v", err)
	}
	defer dispatcher.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-service",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Basic health endpoint for the load balancer.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"service":   "weather-service",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, dispatcher)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}

	// Best-effort final flush so accepted events are not lost on shutdown.
	flushCtx, cancelFlush := context.WithTimeout(context.Background(), cfg.PublishTimeout)
	defer cancelFlush()
	if processed, failed := dispatcher.Flush(flushCtx); processed > 0 || failed > 0 {
		log.Printf("final notification flush: processed=%d errors=%d", processed, failed)
	}
}
