package weekly

import (
	"errors"
	"sort"
	"time"

	"medication-reminder/internal/domain/cards"
	"medication-reminder/internal/domain/intake"
)

var (
	ErrUnknownDay = errors.New("unknown day")
)

type Counts struct {
	Success int `json:"success"`
	Miss    int `json:"miss"`
	Late    int `json:"late"`
}

// DailySummary resume un día de la semana. Empty marca el estado "sin registros",
// distinto de un día con registros en cero.
type DailySummary struct {
	Date   string `json:"date"`
	Day    string `json:"day"`
	Counts Counts `json:"counts"`
	Total  int    `json:"total"`
	Empty  bool   `json:"empty"`
}

type DayDetail struct {
	Day    string             `json:"day"`
	Date   string             `json:"date"`
	Empty  bool               `json:"empty"`
	Events []intake.DoseEvent `json:"events"`
}

// Week es la semana (domingo a sábado) que contiene la fecha de referencia.
type Week struct {
	Start string         `json:"start"`
	Days  []DailySummary `json:"days"`

	events map[string][]intake.DoseEvent
}

// Group arma la semana de ref a partir del historial. No modifica el historial.
func Group(h intake.History, ref time.Time) Week {
	y, m, d := ref.Date()
	start := time.Date(y, m, d-int(ref.Weekday()), 0, 0, 0, 0, ref.Location())

	w := Week{
		Start:  start.Format(intake.DateLayout),
		Days:   make([]DailySummary, 0, len(Days)),
		events: make(map[string][]intake.DoseEvent, len(Days)),
	}

	for i, name := range Days {
		date := start.AddDate(0, 0, i).Format(intake.DateLayout)
		evs := sortedEvents(h[date])

		sum := DailySummary{Date: date, Day: name, Empty: len(evs) == 0}
		for _, e := range evs {
			switch e.Status {
			case intake.StatusSuccess:
				sum.Counts.Success++
			case intake.StatusMiss:
				sum.Counts.Miss++
			case intake.StatusLate:
				sum.Counts.Late++
			default:
				// status desconocido: se lista pero no se cuenta
				continue
			}
			sum.Total++
		}

		w.Days = append(w.Days, sum)
		w.events[name] = evs
	}
	return w
}

// Select devuelve el detalle de un día por nombre (sunday..saturday).
// Lookup puro: el slice devuelto es una copia.
func (w Week) Select(day string) (DayDetail, error) {
	wd, ok := ParseDay(day)
	if !ok || int(wd) >= len(w.Days) {
		return DayDetail{}, ErrUnknownDay
	}
	name := DayName(wd)
	sum := w.Days[int(wd)]

	detail := DayDetail{Day: name, Date: sum.Date, Empty: sum.Empty}
	if evs := w.events[name]; len(evs) > 0 {
		detail.Events = append([]intake.DoseEvent(nil), evs...)
	}
	return detail, nil
}

func sortedEvents(in []intake.DoseEvent) []intake.DoseEvent {
	if len(in) == 0 {
		return nil
	}
	out := make([]intake.DoseEvent, 0, len(in))
	for _, e := range in {
		e.Time = cards.NormalizeClock(e.Time)
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}
