package cards

import "encoding/json"

// Category es el subtítulo de la tarjeta. Solo define el color en la UI.
// @Enum 필수 복용, 선택 복용, 건강보조제
type Category string

const (
	CategoryRequired   Category = "필수 복용"
	CategoryOptional   Category = "선택 복용"
	CategorySupplement Category = "건강보조제"
)

// Tone devuelve la clave de color. Categorías vacías o desconocidas se pintan como "required".
func (c Category) Tone() string {
	switch c {
	case CategoryOptional:
		return "optional"
	case CategorySupplement:
		return "supplement"
	default:
		return "required"
	}
}

// Card es una medicación con su horario y los contadores de hoy.
// Se persiste como array JSON bajo la key "medicationCards".
type Card struct {
	Title    string   `json:"title"`
	Category Category `json:"subtitle"`
	Drugs    []string `json:"drugs"`

	DoseCount int `json:"doseCount"`

	// Times: "HH:MM" en orden; el índice se corresponde con TakenCountToday.
	Times      []string `json:"time"`
	DailyTimes int      `json:"dailyTimes"`

	TakenCountToday int `json:"takenCountToday"`
	LateCountToday  int `json:"lateCountToday"`

	// Solo display
	Rule string `json:"rule"`
	Next string `json:"next"`
	Dose string `json:"dose"`
}

// rawCard refleja la forma libre que llega de storage:
// campos ausentes, números como string, time escalar o lista.
type rawCard struct {
	Title           json.RawMessage `json:"title"`
	Subtitle        json.RawMessage `json:"subtitle"`
	Drugs           json.RawMessage `json:"drugs"`
	DoseCount       json.RawMessage `json:"doseCount"`
	Time            json.RawMessage `json:"time"`
	DailyTimes      json.RawMessage `json:"dailyTimes"`
	TakenCountToday json.RawMessage `json:"takenCountToday"`
	LateCountToday  json.RawMessage `json:"lateCountToday"`
	Rule            json.RawMessage `json:"rule"`
	Next            json.RawMessage `json:"next"`
	Dose            json.RawMessage `json:"dose"`
}

// UnmarshalJSON nunca rechaza un campo mal formado: lo coerciona a su default.
// Solo falla si el valor no es un objeto JSON.
func (c *Card) UnmarshalJSON(b []byte) error {
	var raw rawCard
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*c = Card{
		Title:           normalizeText(raw.Title),
		Category:        NormalizeCategory(raw.Subtitle),
		Drugs:           NormalizeDrugs(raw.Drugs),
		DoseCount:       NormalizeDoseCount(raw.DoseCount),
		Times:           NormalizeTimes(raw.Time),
		DailyTimes:      NormalizeDailyTimes(raw.DailyTimes),
		TakenCountToday: NormalizeTakenCount(raw.TakenCountToday),
		LateCountToday:  NormalizeLateCount(raw.LateCountToday),
		Rule:            normalizeText(raw.Rule),
		Next:            normalizeText(raw.Next),
		Dose:            normalizeText(raw.Dose),
	}
	return nil
}

// TimeCount es la cantidad de tomas programadas por día; 1 si no hay horarios.
func (c Card) TimeCount() int {
	if len(c.Times) == 0 {
		return 1
	}
	return len(c.Times)
}

// Normalized aplica las mismas reglas de default a una Card construida en Go.
// No muta el receptor: devuelve una copia.
func (c Card) Normalized() Card {
	out := c
	if out.DoseCount < 1 {
		out.DoseCount = defaultDoseCount
	}
	if out.DailyTimes < 1 {
		out.DailyTimes = defaultDailyTimes
	}
	if out.TakenCountToday < 0 {
		out.TakenCountToday = 0
	}
	if out.LateCountToday < 0 {
		out.LateCountToday = 0
	}
	if c.Times != nil {
		out.Times = make([]string, len(c.Times))
		for i, t := range c.Times {
			out.Times[i] = NormalizeClock(t)
		}
	}
	if c.Drugs != nil {
		out.Drugs = append([]string(nil), c.Drugs...)
		if len(out.Drugs) == 0 {
			out.Drugs = []string{}
		}
	}
	return out
}
