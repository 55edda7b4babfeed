package slots

import "medication-reminder/internal/domain/cards"

// Slot es uno de los cuatro periodos del día.
type Slot string

const (
	Morning   Slot = "morning"
	Midday    Slot = "midday"
	Evening   Slot = "evening"
	BeforeBed Slot = "before-bed"
)

// All lista los slots en orden del día.
var All = []Slot{Morning, Midday, Evening, BeforeBed}

// Límites en minutos desde medianoche, intervalos [desde, hasta).
const (
	morningStart = 4 * 60     // 04:00
	middayStart  = 10 * 60    // 10:00
	eveningStart = 15 * 60    // 15:00
	bedStart     = 20*60 + 30 // 20:30
)

// Classify asigna un "HH:MM" a su slot. Lo que no cae en mañana/mediodía/tarde
// (incluida la madrugada) es before-bed. Un string inválido se clasifica como cards.DefaultClock.
func Classify(hhmm string) Slot {
	m, ok := cards.ParseClock(hhmm)
	if !ok {
		m, _ = cards.ParseClock(cards.DefaultClock)
	}
	return ClassifyMinutes(m)
}

// ClassifyMinutes es Classify sobre minutos desde medianoche.
func ClassifyMinutes(m int) Slot {
	switch {
	case m >= morningStart && m < middayStart:
		return Morning
	case m >= middayStart && m < eveningStart:
		return Midday
	case m >= eveningStart && m < bedStart:
		return Evening
	default:
		return BeforeBed
	}
}
