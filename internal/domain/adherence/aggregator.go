package adherence

import (
	"math"
	"sort"

	"medication-reminder/internal/domain/cards"
	"medication-reminder/internal/domain/slots"
	"medication-reminder/internal/domain/weekly"
)

const (
	// projectionDays proyecta el dato de hoy a una semana.
	projectionDays = 7
	topDrugsLimit  = 3

	// monthlySuccessRate = clamp(monthlyWeight*today + monthlyBase, 0, 1)
	monthlyWeight = 0.85
	monthlyBase   = 0.10

	// dailyStats de relleno hasta que exista un historial por día.
	placeholderTotal          = 7
	placeholderSaturdayMisses = 1
)

type SlotStats struct {
	Scheduled int `json:"scheduled"`
	Missed    int `json:"missed"`
	Late      int `json:"late"`
}

type DailyStat struct {
	Day    string `json:"day"`
	Missed int    `json:"missed"`
	Late   int    `json:"late"`
	Total  int    `json:"total"`
}

type DrugMissStat struct {
	Title  string `json:"title"`
	Missed int    `json:"missed"`
	Total  int    `json:"total"`
}

// Report es el paquete de estadísticas de la vista de reporte.
type Report struct {
	TotalDosesToday     int     `json:"totalDosesToday"`
	CompletedDosesToday int     `json:"completedDosesToday"`
	TodayMissed         int     `json:"todayMissed"`
	TodaySuccessRate    float64 `json:"todaySuccessRate"`

	// MonthlySuccessRate es una extrapolación del día de hoy, no un promedio histórico.
	MonthlySuccessRate float64 `json:"monthlySuccessRate"`

	WeeklyMissed int `json:"weeklyMissed"`
	WeeklyLate   int `json:"weeklyLate"`

	DailyStats    []DailyStat              `json:"dailyStats"`
	TopDrugs      []DrugMissStat           `json:"topDrugs"`
	TimeSlotStats map[slots.Slot]SlotStats `json:"timeSlotStats"`
}

// Aggregate calcula el reporte desde la lista de tarjetas.
// Función pura: no muta la entrada y con la misma entrada devuelve el mismo Report.
func Aggregate(list []cards.Card) Report {
	r := Report{
		TimeSlotStats: make(map[slots.Slot]SlotStats, len(slots.All)),
	}
	for _, s := range slots.All {
		r.TimeSlotStats[s] = SlotStats{}
	}

	drugs := make([]DrugMissStat, 0, len(list))
	lateToday := 0

	for _, raw := range list {
		c := raw.Normalized()

		timeCount := c.TimeCount()
		expected := c.DoseCount * timeCount
		completed := c.DoseCount * min(c.TakenCountToday, timeCount)
		missed := expected - completed

		r.TotalDosesToday += expected
		r.CompletedDosesToday += completed
		lateToday += c.LateCountToday

		drugs = append(drugs, DrugMissStat{
			Title:  c.Title,
			Missed: missed * projectionDays,
			Total:  expected * projectionDays,
		})

		// Missed y late son independientes: una misma toma puede contar en ambos,
		// porque la tarjeta no guarda estado por toma.
		for i, t := range c.Times {
			slot := slots.Classify(t)
			st := r.TimeSlotStats[slot]
			st.Scheduled++
			if i >= c.TakenCountToday {
				st.Missed++
			}
			if i < c.LateCountToday {
				st.Late++
			}
			r.TimeSlotStats[slot] = st
		}
	}

	r.TodayMissed = r.TotalDosesToday - r.CompletedDosesToday
	if r.TotalDosesToday > 0 {
		r.TodaySuccessRate = float64(r.CompletedDosesToday) / float64(r.TotalDosesToday)
		r.MonthlySuccessRate = projectMonthly(r.TodaySuccessRate)
	}

	r.WeeklyMissed = r.TodayMissed * projectionDays
	r.WeeklyLate = lateToday * projectionDays

	r.TopDrugs = topMissed(drugs, topDrugsLimit)
	r.DailyStats = placeholderDailyStats(r.TotalDosesToday)

	return r
}

func projectMonthly(today float64) float64 {
	v := monthlyWeight*today + monthlyBase
	v = math.Max(0, math.Min(1, v))
	return math.Round(v*100) / 100
}

// topMissed ordena por missed desc; en empate conserva el orden original.
func topMissed(in []DrugMissStat, n int) []DrugMissStat {
	out := append([]DrugMissStat(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Missed > out[j].Missed
	})
	if len(out) > n {
		out = out[:n]
	}
	if out == nil {
		out = []DrugMissStat{}
	}
	return out
}

// placeholderDailyStats arma la semana fija: todos los días con el total de hoy
// y solo el sábado con un olvido sembrado. No hay historial real por día.
func placeholderDailyStats(totalToday int) []DailyStat {
	total := totalToday
	if total == 0 {
		total = placeholderTotal
	}

	out := make([]DailyStat, 0, len(weekly.Days))
	for _, d := range weekly.Days {
		st := DailyStat{Day: d, Total: total}
		if d == weekly.Saturday {
			st.Missed = placeholderSaturdayMisses
		}
		out = append(out, st)
	}
	return out
}
