package schedule

import (
	"testing"

	"medication-reminder/internal/domain/cards"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToday_SingleCardMarksDoneByPosition(t *testing.T) {
	list := []cards.Card{
		{Title: "혈압약", Times: []string{"08:00", "13:00", "19:00"}, DailyTimes: 3, TakenCountToday: 2, Dose: "1정"},
	}

	got := Today(list)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"08:00", "13:00", "19:00"}, times(got))
	assert.Equal(t, []bool{true, true, false}, done(got))
	assert.Equal(t, "혈압약", got[0].Name)
	assert.Equal(t, "혈압약", got[0].DrugCardTitle)
	assert.Equal(t, "1정", got[0].Dose)
}

func TestToday_MergesAndSortsAcrossCards(t *testing.T) {
	list := []cards.Card{
		{Title: "A", Times: []string{"20:00", "08:00"}, TakenCountToday: 1, DoseCount: 2},
		{Title: "B", Times: []string{"12:30"}},
		{Title: "C", Times: []string{"08:00"}},
	}

	got := Today(list)

	assert.Equal(t, []string{"08:00", "08:00", "12:30", "20:00"}, times(got))
	// empate a las 08:00: se conserva el orden de las tarjetas
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, "C", got[1].Name)
	// A[0] = 20:00 hecho, A[1] = 08:00 pendiente
	assert.False(t, got[0].IsDone)
	assert.True(t, got[3].IsDone)
	assert.Equal(t, "2정", got[0].Dose)
}

func TestToday_NormalizesTimesAndDoesNotMutate(t *testing.T) {
	list := []cards.Card{{Title: "A", Times: []string{"9:5", "7:00"}}}

	got := Today(list)

	assert.Equal(t, []string{"07:00", "09:05"}, times(got))
	assert.Equal(t, []string{"9:5", "7:00"}, list[0].Times)
}

func TestToday_EmptyAndFresh(t *testing.T) {
	assert.Empty(t, Today(nil))
	assert.NotNil(t, Today(nil))

	list := []cards.Card{{Title: "A", Times: []string{"08:00"}}}
	a := Today(list)
	a[0].Name = "changed"
	assert.Equal(t, "A", Today(list)[0].Name)
}

func TestPending(t *testing.T) {
	list := []cards.Card{{Title: "A", Times: []string{"08:00", "20:00"}, TakenCountToday: 1}}

	got := Pending(Today(list))

	require.Len(t, got, 1)
	assert.Equal(t, "20:00", got[0].Time)
}

func times(es []Entry) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Time)
	}
	return out
}

func done(es []Entry) []bool {
	out := make([]bool, 0, len(es))
	for _, e := range es {
		out = append(out, e.IsDone)
	}
	return out
}
