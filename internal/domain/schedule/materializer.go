package schedule

import (
	"sort"
	"strconv"
	"strings"

	"medication-reminder/internal/domain/cards"
)

// Entry es una toma concreta de hoy: (tarjeta, horario) con su estado.
type Entry struct {
	Name          string `json:"name"`
	Time          string `json:"time"`
	Dose          string `json:"dose"`
	IsDone        bool   `json:"isDone"`
	DrugCardTitle string `json:"drugCardTitle"`
}

// Today expande los horarios de cada tarjeta en una lista plana ordenada por hora.
// La posición i (1-based) está hecha si i <= TakenCountToday.
// Siempre devuelve un slice nuevo; las tarjetas no se modifican.
func Today(list []cards.Card) []Entry {
	out := make([]Entry, 0, len(list))

	for _, raw := range list {
		c := raw.Normalized()
		dose := doseLabel(c)

		for i, t := range c.Times {
			out = append(out, Entry{
				Name:          c.Title,
				Time:          t,
				Dose:          dose,
				IsDone:        i+1 <= c.TakenCountToday,
				DrugCardTitle: c.Title,
			})
		}
	}

	// "HH:MM" con ceros: el orden lexicográfico es el cronológico.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// Pending filtra las tomas que faltan hoy, en el mismo orden.
func Pending(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !e.IsDone {
			out = append(out, e)
		}
	}
	return out
}

// doseLabel usa el texto libre de la tarjeta o, si falta, "<doseCount>정".
func doseLabel(c cards.Card) string {
	if d := strings.TrimSpace(c.Dose); d != "" {
		return d
	}
	return strconv.Itoa(c.DoseCount) + "정"
}
