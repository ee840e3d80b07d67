package notify

import (
	"fmt"
	"strings"
	"time"
)

// displayDateLayout renders booking dates like "Saturday, 15 June 2024".
const displayDateLayout = "Monday, 02 January 2006"

// Compose renders the subject, plain-text body and routing attributes for
// an event. Unknown event types fall through to the generic update
// template.
func Compose(evt Event) Message {
	evt = evt.normalized()
	date := displayDate(evt.Date)

	var subject, body string
	switch evt.EventType {
	case EventBookingCreated:
		subject = fmt.Sprintf("Booking Confirmed - %s", evt.RoomName)
		body = confirmationBody(evt, date)
	case EventBookingCancelled:
		subject = fmt.Sprintf("Booking Cancelled - %s", evt.RoomName)
		body = cancellationBody(evt, date)
	case EventUserRegistered:
		subject = "Welcome to ConferenceBook"
		body = welcomeBody(evt)
	case EventAccountDeleted:
		subject = "Account Deleted - ConferenceBook"
		body = accountDeletedBody(evt)
	default:
		subject = fmt.Sprintf("Booking Update - %s", evt.RoomName)
		body = genericBody(evt, date)
	}

	return Message{
		Subject: subject,
		Body:    body,
		Attributes: map[string]string{
			"eventType": string(evt.EventType),
			"userEmail": evt.UserEmail,
		},
	}
}

// displayDate formats a booking date for email bodies. The fallback is
// display-only: an unparseable value is printed verbatim instead of
// failing the notification.
func displayDate(value string) string {
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return day.Format(displayDateLayout)
}

// statusLabel turns an event type like BOOKING_RESCHEDULED into
// "Booking Rescheduled" for the generic template's status line.
func statusLabel(t EventType) string {
	words := strings.Fields(strings.ReplaceAll(string(t), "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func confirmationBody(evt Event, date string) string {
	return fmt.Sprintf(`
================================================================================
                         BOOKING CONFIRMATION
================================================================================

Hello %s,

Your conference room booking has been confirmed.

BOOKING DETAILS
--------------------------------------------------------------------------------
    Room:       %s
    Location:   %s
    Date:       %s
    Time:       %s - %s
--------------------------------------------------------------------------------

Booking Reference: %s

================================================================================

IMPORTANT REMINDERS:
- Please arrive 5 minutes before your booking
- Cancel at least 24 hours in advance if needed
- Contact support for any assistance

Thank you for using ConferenceBook.

================================================================================
This is an automated message from ConferenceBook.
Do not reply to this email.
`, evt.UserName, evt.RoomName, evt.LocationName, date, evt.StartTime, evt.EndTime, evt.BookingID)
}

func cancellationBody(evt Event, date string) string {
	return fmt.Sprintf(`
================================================================================
                         BOOKING CANCELLED
================================================================================

Hello %s,

Your booking has been successfully cancelled.

CANCELLED BOOKING DETAILS
--------------------------------------------------------------------------------
    Room:       %s
    Location:   %s
    Date:       %s
--------------------------------------------------------------------------------

Booking Reference: %s

================================================================================

Need to book again? Visit our booking portal.

Thank you for using ConferenceBook.

================================================================================
This is an automated message from ConferenceBook.
Do not reply to this email.
`, evt.UserName, evt.RoomName, evt.LocationName, date, evt.BookingID)
}

func welcomeBody(evt Event) string {
	return fmt.Sprintf(`
================================================================================
                      WELCOME TO CONFERENCEBOOK
================================================================================

Hello %s,

Welcome to ConferenceBook - your conference room booking solution.

Your account has been created successfully.

Registered Email: %s

================================================================================

WHAT YOU CAN DO:
--------------------------------------------------------------------------------
- Browse available conference rooms
- Check real-time availability
- Book rooms with weather-based dynamic pricing
- Manage and reschedule your bookings
- Receive email confirmations
--------------------------------------------------------------------------------

Our system uses weather forecasts to provide dynamic pricing - book on
pleasant days for potential discounts.

================================================================================

Ready to book your first room?
Login and explore our available spaces.

Thank you for choosing ConferenceBook.

================================================================================
This is an automated message from ConferenceBook.
Do not reply to this email.
`, evt.UserName, evt.UserEmail)
}

func accountDeletedBody(evt Event) string {
	return fmt.Sprintf(`
================================================================================
                         ACCOUNT DELETED
================================================================================

Hello %s,

Your ConferenceBook account has been successfully deleted as requested.

Deleted Account: %s

================================================================================

WHAT THIS MEANS:
--------------------------------------------------------------------------------
- Your account data has been removed
- Any active bookings have been cancelled
- You will no longer receive notifications
--------------------------------------------------------------------------------

If you change your mind, you are welcome to create a new account at any time.

================================================================================

If you did not request this deletion, please contact our support team
immediately.

Thank you for using ConferenceBook.

================================================================================
This is an automated message from ConferenceBook.
Do not reply to this email.
`, evt.UserName, evt.UserEmail)
}

func genericBody(evt Event, date string) string {
	return fmt.Sprintf(`
================================================================================
                         BOOKING UPDATE
================================================================================

Hello %s,

There has been an update to your booking.

BOOKING DETAILS
--------------------------------------------------------------------------------
    Room:       %s
    Location:   %s
    Date:       %s
    Status:     %s
--------------------------------------------------------------------------------

Booking Reference: %s

================================================================================

Thank you for using ConferenceBook.

================================================================================
This is an automated message from ConferenceBook.
Do not reply to this email.
`, evt.UserName, evt.RoomName, evt.LocationName, date, statusLabel(evt.EventType), evt.BookingID)
}
