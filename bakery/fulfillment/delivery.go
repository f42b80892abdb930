package fulfillment

import (
	"fmt"
	"net/url"
	"time"
)

const deliveryTimeZone = "Asia/Kathmandu"

// deliveryWindow is how long a delivery slot is blocked on the calendar.
const deliveryWindow = time.Hour

// DeliveryRequest describes a delivery to schedule.
type DeliveryRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number"`
	Date          string `json:"date"` // YYYY-MM-DD
	Time          string `json:"time"` // HH:MM, 24-hour
	ItemOrdered   string `json:"item_ordered"`
	DeliveryNotes string `json:"delivery_notes"`
}

// DeliveryEvent is a calendar event for a scheduled delivery, with a
// Google Calendar prefill link the staff can open to save it.
type DeliveryEvent struct {
	Summary     string    `json:"summary"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	TimeZone    string    `json:"time_zone"`
	EventLink   string    `json:"event_link"`
}

// ScheduleDelivery parses the requested slot in the bakery's time zone and
// builds a one-hour calendar event for it.
func ScheduleDelivery(req DeliveryRequest) (DeliveryEvent, error) {
	loc, err := time.LoadLocation(deliveryTimeZone)
	if err != nil {
		return DeliveryEvent{}, fmt.Errorf("fulfillment: load time zone: %w", err)
	}
	start, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.Time, loc)
	if err != nil {
		return DeliveryEvent{}, fmt.Errorf("fulfillment: parse delivery slot: %w", err)
	}
	end := start.Add(deliveryWindow)

	event := DeliveryEvent{
		Summary:     "Delivery for " + req.Name,
		Location:    req.Address,
		Description: fmt.Sprintf("Order: %s\nContact: %s\nNotes: %s", req.ItemOrdered, req.ContactNumber, req.DeliveryNotes),
		Start:       start,
		End:         end,
		TimeZone:    deliveryTimeZone,
	}
	event.EventLink = calendarLink(event)
	return event, nil
}

// calendarLink builds a Google Calendar "event edit" prefill URL.
func calendarLink(e DeliveryEvent) string {
	const stamp = "20060102T150405"
	q := url.Values{}
	q.Set("text", e.Summary)
	q.Set("dates", e.Start.Format(stamp)+"/"+e.End.Format(stamp))
	q.Set("details", e.Description)
	q.Set("location", e.Location)
	q.Set("ctz", e.TimeZone)
	return "https://calendar.google.com/calendar/r/eventedit?" + q.Encode()
}
