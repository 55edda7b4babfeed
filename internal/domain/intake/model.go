package intake

import "time"

// DateLayout es el formato de las keys del historial.
const DateLayout = "2006-01-02"

// Status de una toma registrada manualmente.
// @Enum success, miss, late
type Status string

const (
	StatusSuccess Status = "success"
	StatusMiss    Status = "miss"
	StatusLate    Status = "late"
)

// Statuses en el orden en que se muestran.
var Statuses = []Status{StatusSuccess, StatusMiss, StatusLate}

func (s Status) Valid() bool {
	switch s {
	case StatusSuccess, StatusMiss, StatusLate:
		return true
	default:
		return false
	}
}

type DoseEvent struct {
	Time   string `json:"time"` // HH:MM
	Name   string `json:"name"`
	Status Status `json:"status"`
}

// History agrupa eventos por fecha (DateLayout).
type History map[string][]DoseEvent

// Group es un conjunto de medicamentos que se toman juntos.
type Group struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Times      []string  `json:"times"`
	CardTitles []string  `json:"cardTitles"`
	CreatedAt  time.Time `json:"createdAt"`
}
