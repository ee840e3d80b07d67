package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullEvent(eventType EventType) Event {
	return Event{
		EventType:    eventType,
		BookingID:    "bk_12345",
		UserEmail:    "alice@example.com",
		UserName:     "Alice Smith",
		RoomName:     "Boardroom A",
		LocationName: "London",
		Date:         "2024-06-15",
		StartTime:    "09:30",
		EndTime:      "11:00",
	}
}

func TestComposeBookingCreated(t *testing.T) {
	msg := Compose(fullEvent(EventBookingCreated))

	assert.Equal(t, "Booking Confirmed - Boardroom A", msg.Subject)
	assert.Contains(t, msg.Body, "BOOKING CONFIRMATION")
	assert.Contains(t, msg.Body, "Hello Alice Smith,")
	assert.Contains(t, msg.Body, "Room:       Boardroom A")
	assert.Contains(t, msg.Body, "Location:   London")
	assert.Contains(t, msg.Body, "Date:       Saturday, 15 June 2024")
	assert.Contains(t, msg.Body, "Time:       09:30 - 11:00")
	assert.Contains(t, msg.Body, "Booking Reference: bk_12345")
	assert.Contains(t, msg.Body, "Do not reply to this email.")

	assert.Equal(t, map[string]string{
		"eventType": "BOOKING_CREATED",
		"userEmail": "alice@example.com",
	}, msg.Attributes)
}

func TestComposeBookingCancelled(t *testing.T) {
	msg := Compose(fullEvent(EventBookingCancelled))

	assert.Equal(t, "Booking Cancelled - Boardroom A", msg.Subject)
	assert.Contains(t, msg.Body, "BOOKING CANCELLED")
	assert.Contains(t, msg.Body, "Your booking has been successfully cancelled.")
	assert.Contains(t, msg.Body, "Need to book again? Visit our booking portal.")
	assert.NotContains(t, msg.Body, "Time:")
}

func TestComposeUserRegistered(t *testing.T) {
	msg := Compose(fullEvent(EventUserRegistered))

	assert.Equal(t, "Welcome to ConferenceBook", msg.Subject)
	assert.Contains(t, msg.Body, "WELCOME TO CONFERENCEBOOK")
	assert.Contains(t, msg.Body, "Registered Email: alice@example.com")
	assert.Contains(t, msg.Body, "weather-based dynamic pricing")
}

func TestComposeAccountDeleted(t *testing.T) {
	msg := Compose(fullEvent(EventAccountDeleted))

	assert.Equal(t, "Account Deleted - ConferenceBook", msg.Subject)
	assert.Contains(t, msg.Body, "ACCOUNT DELETED")
	assert.Contains(t, msg.Body, "Deleted Account: alice@example.com")
	assert.Contains(t, msg.Body, "WHAT THIS MEANS:")
}

func TestComposeUnknownTypeGetsGenericTemplate(t *testing.T) {
	msg := Compose(fullEvent(EventType("BOOKING_RESCHEDULED")))

	assert.Equal(t, "Booking Update - Boardroom A", msg.Subject)
	assert.Contains(t, msg.Body, "BOOKING UPDATE")
	assert.Contains(t, msg.Body, "Status:     Booking Rescheduled")
	assert.Equal(t, "BOOKING_RESCHEDULED", msg.Attributes["eventType"])
}

func TestComposeAppliesDefaults(t *testing.T) {
	msg := Compose(Event{UserEmail: "bob@example.com"})

	// An empty event type means a created booking.
	assert.Equal(t, "Booking Confirmed - Conference Room", msg.Subject)
	assert.Contains(t, msg.Body, "Hello Guest,")
	assert.Contains(t, msg.Body, "Location:   Location")
	assert.Contains(t, msg.Body, "Date:       N/A")
	assert.Contains(t, msg.Body, "Time:       09:00 - 17:00")
	assert.Contains(t, msg.Body, "Booking Reference: N/A")
	assert.Equal(t, "BOOKING_CREATED", msg.Attributes["eventType"])
	assert.Equal(t, "bob@example.com", msg.Attributes["userEmail"])
}

func TestComposeKeepsUnparseableDateVerbatim(t *testing.T) {
	evt := fullEvent(EventBookingCreated)
	evt.Date = "sometime next week"

	msg := Compose(evt)
	assert.Contains(t, msg.Body, "Date:       sometime next week")
}

func TestComposeBannerWidth(t *testing.T) {
	msg := Compose(fullEvent(EventBookingCreated))

	rule := strings.Repeat("=", 80)
	require.Contains(t, msg.Body, rule)
	assert.True(t, strings.HasPrefix(msg.Body, "\n"+rule))
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "Saturday, 15 June 2024", displayDate("2024-06-15"))
	assert.Equal(t, "Wednesday, 01 January 2025", displayDate("2025-01-01"))
	assert.Equal(t, "N/A", displayDate("N/A"))
	assert.Equal(t, "15/06/2024", displayDate("15/06/2024"))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Booking Created", statusLabel(EventBookingCreated))
	assert.Equal(t, "Booking Rescheduled", statusLabel(EventType("BOOKING_RESCHEDULED")))
	assert.Equal(t, "Payment Failed Retry", statusLabel(EventType("PAYMENT_FAILED_RETRY")))
}
