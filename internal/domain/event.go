package domain

import (
	"encoding/json"
	"time"
)

// EventCategory classifies an event.
type EventCategory string

// Event category constants.
const (
	EventCategoryGastronomic EventCategory = "gastronomic"
	EventCategoryMusic       EventCategory = "music"
	EventCategoryArt         EventCategory = "art"
	EventCategorySports      EventCategory = "sports"
	EventCategoryWorkshop    EventCategory = "workshop"
	EventCategoryMarket      EventCategory = "market"
	EventCategoryOther       EventCategory = "other"
)

// MaxTicketsPerPurchase caps a single ticket order.
const MaxTicketsPerPurchase = 10

// Event is a ticketed local event. Price is in cents; 0 means free.
type Event struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description,omitempty"`
	Category         EventCategory `json:"category"`
	StartsAt         time.Time     `json:"starts_at"`
	EndsAt           *time.Time    `json:"ends_at,omitempty"`
	Location         string        `json:"location,omitempty"`
	Address          string        `json:"address,omitempty"`
	Price            int64         `json:"price"`
	Capacity         int           `json:"capacity"`
	CurrentAttendees int           `json:"current_attendees"`
	Organizer        string        `json:"organizer,omitempty"`
	IsSponsored      bool          `json:"is_sponsored"`
	IsFeatured       bool          `json:"is_featured"`
	ImageURL         string        `json:"image_url,omitempty"`
	Requirements     []string      `json:"requirements,omitempty"`
	Includes         []string      `json:"includes,omitempty"`
	Tags             []string      `json:"tags,omitempty"`
}

// AvailableTickets is capacity minus attendees, kept within [0, capacity].
func (e Event) AvailableTickets() int {
	capacity := max(e.Capacity, 0)
	return min(max(capacity-e.CurrentAttendees, 0), capacity)
}

// MaxSelectableTickets is the upper bound of the ticket selector:
// min(available, MaxTicketsPerPurchase).
func (e Event) MaxSelectableTickets() int {
	return min(e.AvailableTickets(), MaxTicketsPerPurchase)
}

// IsSoldOut reports whether no tickets remain.
func (e Event) IsSoldOut() bool {
	return e.AvailableTickets() == 0
}

// IsFree reports whether attendance costs nothing.
func (e Event) IsFree() bool {
	return e.Price == 0
}

// IsToday reports whether the event starts on the calendar day of now, in
// now's location.
func (e Event) IsToday(now time.Time) bool {
	y1, m1, d1 := e.StartsAt.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsThisWeek reports whether the event starts within the Monday-to-Sunday
// week containing now.
func (e Event) IsThisWeek(now time.Time) bool {
	start := startOfWeek(now)
	end := start.AddDate(0, 0, 7)
	starts := e.StartsAt.In(now.Location())
	return !starts.Before(start) && starts.Before(end)
}

// IsUpcoming reports whether the event has not started yet.
func (e Event) IsUpcoming(now time.Time) bool {
	return e.StartsAt.After(now)
}

func startOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

type eventAlias Event

// MarshalJSON adds the derived available_tickets field for older clients.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		eventAlias
		AvailableTickets int `json:"available_tickets"`
	}{eventAlias(e), e.AvailableTickets()})
}

// UnmarshalJSON migrates legacy event payloads: "name" becomes "title",
// "date" becomes "starts_at", and a payload that only reports
// "available_tickets" has its attendee count derived from capacity.
func (e *Event) UnmarshalJSON(data []byte) error {
	var wire struct {
		eventAlias
		CurrentAttendees *int       `json:"current_attendees"`
		AvailableTickets *int       `json:"available_tickets"`
		LegacyName       string     `json:"name"`
		LegacyDate       *time.Time `json:"date"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*e = Event(wire.eventAlias)
	if e.Title == "" {
		e.Title = wire.LegacyName
	}
	if e.StartsAt.IsZero() && wire.LegacyDate != nil {
		e.StartsAt = *wire.LegacyDate
	}

	switch {
	case wire.CurrentAttendees != nil:
		e.CurrentAttendees = *wire.CurrentAttendees
	case wire.AvailableTickets != nil:
		e.CurrentAttendees = e.Capacity - *wire.AvailableTickets
	}
	e.CurrentAttendees = min(max(e.CurrentAttendees, 0), max(e.Capacity, 0))
	return nil
}
