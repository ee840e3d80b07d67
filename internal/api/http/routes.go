package httpapi

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/conferencebook/weather-service/internal/notify"
	"github.com/conferencebook/weather-service/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, dispatcher *notify.Dispatcher) {
	api := app.Group("/api")

	wx := api.Group("/weather")

	wx.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"service":   "weather-service",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	wx.Get("/forecast", func(c *fiber.Ctx) error {
		locationID := c.Query("locationId")
		date := c.Query("date")

		if locationID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "locationId is required")
		}
		if date == "" {
			return fiber.NewError(fiber.StatusBadRequest, "date is required (YYYY-MM-DD format)")
		}

		forecast, err := service.Simulate(locationID, date)
		if err != nil {
			return forecastError(err, locationID)
		}

		return c.JSON(forecast)
	})

	wx.Get("/forecast/range", func(c *fiber.Ctx) error {
		locationID := c.Query("locationId")
		startDate := c.Query("startDate")
		endDate := c.Query("endDate")

		if locationID == "" || startDate == "" || endDate == "" {
			return fiber.NewError(fiber.StatusBadRequest, "locationId, startDate, and endDate are required")
		}

		forecasts, err := service.SimulateRange(locationID, startDate, endDate)
		if err != nil {
			return forecastError(err, locationID)
		}

		return c.JSON(fiber.Map{
			"locationId": locationID,
			"startDate":  startDate,
			"endDate":    endDate,
			"count":      len(forecasts),
			"forecasts":  forecasts,
		})
	})

	wx.Get("/locations", func(c *fiber.Ctx) error {
		locations := service.Locations()

		entries := make([]fiber.Map, 0, len(locations))
		for _, loc := range locations {
			entries = append(entries, fiber.Map{
				"id":          loc.ID,
				"name":        loc.Name,
				"coordinates": loc.Coordinates,
			})
		}

		return c.JSON(fiber.Map{
			"count":     len(entries),
			"locations": entries,
		})
	})

	notifications := api.Group("/notifications")

	notifications.Post("/events", func(c *fiber.Ctx) error {
		var evt notify.Event
		if err := c.BodyParser(&evt); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid event payload")
		}

		if err := validate.Struct(evt); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := dispatcher.Enqueue(evt); err != nil {
			if errors.Is(err, notify.ErrQueueFull) {
				return fiber.NewError(fiber.StatusTooManyRequests, "notification queue is full, retry later")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to queue notification")
		}

		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"accepted": true,
			"pending":  dispatcher.Pending(),
		})
	})
}

// forecastError maps simulator errors onto HTTP status codes.
func forecastError(err error, locationID string) error {
	switch {
	case errors.Is(err, weather.ErrLocationNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Location not found: "+locationID)
	case errors.Is(err, weather.ErrInvalidDate):
		return fiber.NewError(fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
	case errors.Is(err, weather.ErrEndBeforeStart):
		return fiber.NewError(fiber.StatusBadRequest, "endDate must be after startDate")
	case errors.Is(err, weather.ErrRangeTooLarge):
		return fiber.NewError(fiber.StatusBadRequest, "Date range cannot exceed 30 days")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate forecast")
	}
}
