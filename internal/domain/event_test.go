package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_AvailableTickets(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		attendees int
		want      int
	}{
		{"partially sold", 12, 8, 4},
		{"empty", 50, 0, 50},
		{"sold out", 10, 10, 0},
		{"oversold clamps to zero", 10, 14, 0},
		{"negative attendees clamps to capacity", 10, -3, 10},
		{"zero capacity", 0, 0, 0},
		{"negative capacity", -5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{Capacity: tt.capacity, CurrentAttendees: tt.attendees}
			got := e.AvailableTickets()
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, max(tt.capacity, 0))
		})
	}
}

func TestEvent_MaxSelectableTickets(t *testing.T) {
	assert.Equal(t, 4, Event{Capacity: 12, CurrentAttendees: 8}.MaxSelectableTickets())
	assert.Equal(t, MaxTicketsPerPurchase, Event{Capacity: 500}.MaxSelectableTickets())
}

func TestEvent_IsFree(t *testing.T) {
	assert.True(t, Event{Price: 0}.IsFree())
	assert.False(t, Event{Price: 1}.IsFree())
}

func TestEvent_DateProjections(t *testing.T) {
	loc := time.FixedZone("CST", -6*3600)
	// Wednesday.
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, loc)

	tests := []struct {
		name     string
		starts   time.Time
		today    bool
		thisWeek bool
		upcoming bool
	}{
		{"later today", time.Date(2025, 3, 12, 20, 0, 0, 0, loc), true, true, true},
		{"earlier today", time.Date(2025, 3, 12, 8, 0, 0, 0, loc), true, true, false},
		{"monday of this week", time.Date(2025, 3, 10, 0, 0, 0, 0, loc), false, true, false},
		{"sunday of this week", time.Date(2025, 3, 16, 23, 59, 0, 0, loc), false, true, true},
		{"next monday", time.Date(2025, 3, 17, 0, 0, 0, 0, loc), false, false, true},
		{"last sunday", time.Date(2025, 3, 9, 23, 0, 0, 0, loc), false, false, false},
		// 02:00 UTC on the 13th is still the 12th in CST.
		{"other zone same local day", time.Date(2025, 3, 13, 2, 0, 0, 0, time.UTC), true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{StartsAt: tt.starts}
			assert.Equal(t, tt.today, e.IsToday(now))
			assert.Equal(t, tt.thisWeek, e.IsThisWeek(now))
			assert.Equal(t, tt.upcoming, e.IsUpcoming(now))
		})
	}
}

func TestEvent_RoundTrip(t *testing.T) {
	ends := time.Date(2025, 5, 1, 23, 0, 0, 0, time.UTC)
	original := Event{
		ID:               "ev-1",
		Title:            "Festival del Taco",
		Description:      "Tacos de todo el país",
		Category:         EventCategoryGastronomic,
		StartsAt:         time.Date(2025, 5, 1, 18, 0, 0, 0, time.UTC),
		EndsAt:           &ends,
		Location:         "Parque México",
		Price:            15000,
		Capacity:         12,
		CurrentAttendees: 8,
		Organizer:        "Proyecto X",
		IsSponsored:      true,
		Requirements:     []string{"Mayor de 18"},
		Includes:         []string{"3 tacos", "1 bebida"},
		Tags:             []string{"comida"},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"available_tickets":4`)

	var decoded Event
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestEvent_LegacyPayload(t *testing.T) {
	payload := `{
		"id": "old-1",
		"name": "Noche de Jazz",
		"date": "2025-06-01T20:00:00Z",
		"category": "music",
		"price": 0,
		"capacity": 12,
		"available_tickets": 4
	}`

	var e Event
	require.NoError(t, json.Unmarshal([]byte(payload), &e))

	assert.Equal(t, "Noche de Jazz", e.Title)
	assert.Equal(t, time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC), e.StartsAt)
	assert.Equal(t, 8, e.CurrentAttendees)
	assert.Equal(t, 4, e.AvailableTickets())
	assert.True(t, e.IsFree())
}

func TestEvent_DecodeClampsAttendees(t *testing.T) {
	var e Event
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","title":"t","capacity":5,"available_tickets":9}`), &e))
	assert.Equal(t, 0, e.CurrentAttendees)
	assert.Equal(t, 5, e.AvailableTickets())

	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","title":"t","capacity":5,"current_attendees":7}`), &e))
	assert.Equal(t, 5, e.CurrentAttendees)
	assert.Equal(t, 0, e.AvailableTickets())
}

func TestEvent_CanonicalFieldsWinOverLegacy(t *testing.T) {
	var e Event
	payload := `{"title":"Nuevo","name":"Viejo","capacity":10,"current_attendees":2,"available_tickets":1}`
	require.NoError(t, json.Unmarshal([]byte(payload), &e))

	assert.Equal(t, "Nuevo", e.Title)
	assert.Equal(t, 8, e.AvailableTickets())
}
