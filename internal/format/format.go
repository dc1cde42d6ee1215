// Package format renders domain values for display. It holds no state other
// than the locale, so domain models stay free of presentation concerns.
package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FreeLabel is shown instead of a zero price.
const FreeLabel = "Gratis"

var (
	weekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	months   = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio",
		"agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// Formatter formats prices, dates and ratings for one locale and time zone.
type Formatter struct {
	printer  *message.Printer
	location *time.Location
}

// New returns a Formatter for the given BCP 47 tag (e.g. "es-MX"). An
// unparsable tag falls back to Spanish; a nil location means UTC.
func New(tag string, loc *time.Location) *Formatter {
	lang, err := language.Parse(tag)
	if err != nil {
		lang = language.Spanish
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{printer: message.NewPrinter(lang), location: loc}
}

// Price renders an amount in cents. Zero is FreeLabel.
func (f *Formatter) Price(cents int64) string {
	if cents == 0 {
		return FreeLabel
	}
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + "$" + f.printer.Sprintf("%.2f", float64(cents)/100)
}

// Discount renders a discount percentage as "-25%".
func (f *Formatter) Discount(percent int) string {
	return fmt.Sprintf("-%d%%", percent)
}

// Rating renders a star rating with one decimal.
func (f *Formatter) Rating(rating float64) string {
	return f.printer.Sprintf("%.1f", rating)
}

// PriceLevel renders a 1-4 price tier as dollar signs.
func (f *Formatter) PriceLevel(level int) string {
	return strings.Repeat("$", min(max(level, 1), 4))
}

// Tickets renders a ticket count with the right plural.
func (f *Formatter) Tickets(n int) string {
	if n == 1 {
		return "1 boleto"
	}
	return f.printer.Sprintf("%d boletos", n)
}

// DeliveryTime renders an estimated delivery time in minutes.
func (f *Formatter) DeliveryTime(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}

// EventDate renders a date as "sábado 1 de marzo".
func (f *Formatter) EventDate(t time.Time) string {
	t = t.In(f.location)
	return fmt.Sprintf("%s %d de %s", weekdays[t.Weekday()], t.Day(), months[t.Month()-1])
}

// ShortDate renders a date as "1 mar".
func (f *Formatter) ShortDate(t time.Time) string {
	t = t.In(f.location)
	return fmt.Sprintf("%d %s", t.Day(), months[t.Month()-1][:3])
}

// EventTime renders a 24-hour clock time as "20:30".
func (f *Formatter) EventTime(t time.Time) string {
	return t.In(f.location).Format("15:04")
}

// RelativeDay renders "Hoy" or "Mañana" when t falls on those days relative
// to now, and EventDate otherwise.
func (f *Formatter) RelativeDay(t, now time.Time) string {
	t = t.In(f.location)
	now = now.In(f.location)
	switch {
	case sameDay(t, now):
		return "Hoy"
	case sameDay(t, now.AddDate(0, 0, 1)):
		return "Mañana"
	default:
		return f.EventDate(t)
	}
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
