package notify

// EventType identifies the kind of booking-system occurrence behind a
// notification.
type EventType string

const (
	EventBookingCreated   EventType = "BOOKING_CREATED"
	EventBookingCancelled EventType = "BOOKING_CANCELLED"
	EventUserRegistered   EventType = "USER_REGISTERED"
	EventAccountDeleted   EventType = "ACCOUNT_DELETED"
)

// Event is one booking-system occurrence to notify a user about. Unknown
// event types are accepted and rendered with the generic update template.
type Event struct {
	EventType    EventType `json:"eventType"`
	BookingID    string    `json:"bookingId"`
	UserEmail    string    `json:"userEmail" validate:"required,email"`
	UserName     string    `json:"userName"`
	RoomName     string    `json:"roomName"`
	LocationName string    `json:"locationName"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
}

// normalized fills defaults for sparse events so templates always have
// something to print.
func (e Event) normalized() Event {
	if e.EventType == "" {
		e.EventType = EventBookingCreated
	}
	if e.BookingID == "" {
		e.BookingID = "N/A"
	}
	if e.UserName == "" {
		e.UserName = "Guest"
	}
	if e.RoomName == "" {
		e.RoomName = "Conference Room"
	}
	if e.LocationName == "" {
		e.LocationName = "Location"
	}
	if e.Date == "" {
		e.Date = "N/A"
	}
	if e.StartTime == "" {
		e.StartTime = "09:00"
	}
	if e.EndTime == "" {
		e.EndTime = "17:00"
	}
	return e
}
