package weekly

import (
	"strings"
	"time"
)

// Day of week constants; la semana empieza el domingo.
const (
	Sunday    = "sunday"
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
)

// Days contiene los días en orden de semana, indexados por time.Weekday.
var Days = []string{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// DayName devuelve el nombre de un time.Weekday.
func DayName(d time.Weekday) string {
	return Days[int(d)%7]
}

// ParseDay acepta el nombre completo sin importar mayúsculas.
func ParseDay(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, d := range Days {
		if d == s {
			return time.Weekday(i), true
		}
	}
	return 0, false
}
