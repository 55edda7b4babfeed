package adherence

import (
	"testing"

	"medication-reminder/internal/domain/cards"
	"medication-reminder/internal/domain/slots"
	"medication-reminder/internal/domain/weekly"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tenDoses: total 10, completadas 7.
func tenDoses() []cards.Card {
	return []cards.Card{
		// 2 x 3 = 6 esperadas, 2 x 2 = 4 completadas
		{Title: "혈압약", DoseCount: 2, Times: []string{"08:00", "13:00", "19:00"}, DailyTimes: 3, TakenCountToday: 2},
		// 1 x 2 = 2 esperadas, 1 completada, 1 tardía
		{Title: "당뇨약", DoseCount: 1, Times: []string{"08:30", "21:00"}, DailyTimes: 2, TakenCountToday: 1, LateCountToday: 1},
		// 1 x 2 = 2 esperadas, 2 completadas (taken excede: se limita a timeCount)
		{Title: "비타민", DoseCount: 1, Times: []string{"07:00", "12:00"}, DailyTimes: 2, TakenCountToday: 5},
	}
}

func TestAggregate_TodayTotals(t *testing.T) {
	r := Aggregate(tenDoses())

	assert.Equal(t, 10, r.TotalDosesToday)
	assert.Equal(t, 7, r.CompletedDosesToday)
	assert.Equal(t, 3, r.TodayMissed)
	assert.InDelta(t, 0.7, r.TodaySuccessRate, 1e-9)
	// 0.85*0.7 + 0.10 = 0.695 → 0.7
	assert.InDelta(t, 0.7, r.MonthlySuccessRate, 1e-9)
	assert.Equal(t, 21, r.WeeklyMissed)
	assert.Equal(t, 7, r.WeeklyLate)
}

func TestAggregate_EmptyInput(t *testing.T) {
	r := Aggregate(nil)

	assert.Equal(t, 0, r.TotalDosesToday)
	assert.Equal(t, 0.0, r.TodaySuccessRate)
	assert.Equal(t, 0.0, r.MonthlySuccessRate)
	assert.Empty(t, r.TopDrugs)
	assert.NotNil(t, r.TopDrugs)
	require.Len(t, r.DailyStats, 7)
	for _, d := range r.DailyStats {
		assert.Equal(t, 7, d.Total, "empty list uses the placeholder total")
	}
	assert.Len(t, r.TimeSlotStats, 4)
}

func TestAggregate_MonthlyIsBounded(t *testing.T) {
	all := Aggregate([]cards.Card{{Title: "A", Times: []string{"08:00"}, TakenCountToday: 1}})
	assert.Equal(t, 0.95, all.MonthlySuccessRate)

	none := Aggregate([]cards.Card{{Title: "A", Times: []string{"08:00"}}})
	assert.Equal(t, 0.1, none.MonthlySuccessRate)
}

func TestAggregate_TimeSlotStats_DoubleCountsMissedAndLate(t *testing.T) {
	list := []cards.Card{
		// idx0 08:00 morning: hecho, tardío. idx1 13:00 midday: pendiente y "tardío" a la vez.
		{Title: "A", Times: []string{"08:00", "13:00", "22:00"}, TakenCountToday: 1, LateCountToday: 2},
	}
	r := Aggregate(list)

	assert.Equal(t, SlotStats{Scheduled: 1, Missed: 0, Late: 1}, r.TimeSlotStats[slots.Morning])
	assert.Equal(t, SlotStats{Scheduled: 1, Missed: 1, Late: 1}, r.TimeSlotStats[slots.Midday])
	assert.Equal(t, SlotStats{}, r.TimeSlotStats[slots.Evening])
	assert.Equal(t, SlotStats{Scheduled: 1, Missed: 1, Late: 0}, r.TimeSlotStats[slots.BeforeBed])
}

func TestAggregate_TopDrugs_StableTopThree(t *testing.T) {
	list := []cards.Card{
		{Title: "A", Times: []string{"08:00"}, TakenCountToday: 1}, // 0
		{Title: "B", Times: []string{"08:00", "20:00"}},            // 2
		{Title: "C", Times: []string{"08:00"}},                     // 1
		{Title: "D", Times: []string{"08:00", "20:00"}},            // 2 (empate con B)
		{Title: "E", DoseCount: 3, Times: []string{"08:00"}},       // 3
	}
	r := Aggregate(list)

	require.Len(t, r.TopDrugs, 3)
	assert.Equal(t, DrugMissStat{Title: "E", Missed: 21, Total: 21}, r.TopDrugs[0])
	assert.Equal(t, DrugMissStat{Title: "B", Missed: 14, Total: 14}, r.TopDrugs[1])
	assert.Equal(t, DrugMissStat{Title: "D", Missed: 14, Total: 14}, r.TopDrugs[2])
}

func TestAggregate_PlaceholderDailyStats(t *testing.T) {
	r := Aggregate(tenDoses())

	require.Len(t, r.DailyStats, 7)
	assert.Equal(t, weekly.Sunday, r.DailyStats[0].Day)
	for _, d := range r.DailyStats {
		assert.Equal(t, 10, d.Total)
		assert.Equal(t, 0, d.Late)
		if d.Day == weekly.Saturday {
			assert.Equal(t, 1, d.Missed)
		} else {
			assert.Equal(t, 0, d.Missed)
		}
	}
}

func TestAggregate_PermissiveFields(t *testing.T) {
	// DoseCount 0 y contadores negativos se tratan con sus defaults.
	r := Aggregate([]cards.Card{{Title: "A", DoseCount: 0, Times: []string{"9:5"}, TakenCountToday: -4}})

	assert.Equal(t, 1, r.TotalDosesToday)
	assert.Equal(t, 0, r.CompletedDosesToday)
	assert.Equal(t, 1, r.TimeSlotStats[slots.Morning].Scheduled)
}

func TestAggregate_IsPureAndIdempotent(t *testing.T) {
	list := tenDoses()
	before := tenDoses()

	a := Aggregate(list)
	b := Aggregate(list)

	assert.Equal(t, a, b)
	assert.Equal(t, before, list, "input cards must not be mutated")
}

func TestAggregate_CardWithoutTimesCountsOnce(t *testing.T) {
	r := Aggregate([]cards.Card{{Title: "A", DoseCount: 2}})

	assert.Equal(t, 2, r.TotalDosesToday)
	assert.Equal(t, 2, r.TodayMissed)
	for _, s := range slots.All {
		assert.Equal(t, 0, r.TimeSlotStats[s].Scheduled)
	}
}
