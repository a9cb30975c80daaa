package service

import (
	"fmt"
	"time"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
)

const NoDateSet = "No date set"

var (
	spanishWeekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	spanishMonths   = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// FormatEventDate renders the destination's event date the way es-CO locales
// print a long date with time, e.g. "lunes, 20 de octubre de 2025, 06:00 p. m.".
func FormatEventDate(d domain.Destination, loc *time.Location) string {
	t, ok := d.EventTime(loc)
	if !ok {
		return NoDateSet
	}
	if loc != nil {
		t = t.In(loc)
	}
	return formatSpanishDateTime(t)
}

func formatSpanishDateTime(t time.Time) string {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "a. m."
	if t.Hour() >= 12 {
		meridiem = "p. m."
	}
	return fmt.Sprintf("%s, %d de %s de %d, %02d:%02d %s",
		spanishWeekdays[t.Weekday()],
		t.Day(),
		spanishMonths[t.Month()-1],
		t.Year(),
		hour,
		t.Minute(),
		meridiem,
	)
}
