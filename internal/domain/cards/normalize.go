package cards

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Política de defaults: cada campo tiene una sola función de coerción.
const (
	DefaultClock = "09:00"

	defaultDoseCount  = 1
	defaultDailyTimes = 1
)

// ParseClock acepta H:M, HH:M, H:MM y HH:MM (24h) y devuelve minutos desde medianoche.
func ParseClock(s string) (int, bool) {
	hs, ms, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || !isDigits(hs) || !isDigits(ms) {
		return 0, false
	}
	h, _ := strconv.Atoi(hs)
	m, _ := strconv.Atoi(ms)
	if h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// isDigits: 1 o 2 dígitos ASCII.
func isDigits(s string) bool {
	if len(s) == 0 || len(s) > 2 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatClock es la inversa de ParseClock ("HH:MM" con ceros).
func FormatClock(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	return leftPad(minutes/60) + ":" + leftPad(minutes%60)
}

// NormalizeClock devuelve "HH:MM" con ceros ("9:5" → "09:05").
// Cualquier valor inválido se convierte en DefaultClock.
func NormalizeClock(s string) string {
	m, ok := ParseClock(s)
	if !ok {
		return DefaultClock
	}
	return FormatClock(m)
}

// NormalizeTimes acepta un "HH:MM" escalar o una lista.
// null/ausente → nil; escalar vacío → lista vacía; entradas no-string → DefaultClock.
func NormalizeTimes(raw json.RawMessage) []string {
	if isNull(raw) {
		return nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if strings.TrimSpace(single) == "" {
			return []string{}
		}
		return []string{NormalizeClock(single)}
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, item := range list {
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				out = append(out, DefaultClock)
				continue
			}
			out = append(out, NormalizeClock(s))
		}
		return out
	}

	// número, objeto, bool: una toma en el horario por defecto
	return []string{DefaultClock}
}

// NormalizeDrugs acepta un string o una lista; descarta elementos que no son string.
func NormalizeDrugs(raw json.RawMessage) []string {
	if isNull(raw) {
		return nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}

// NormalizeCategory guarda el string tal cual; el color se resuelve en Category.Tone.
func NormalizeCategory(raw json.RawMessage) Category {
	return Category(normalizeText(raw))
}

// NormalizeDoseCount: unidades por toma, default 1.
func NormalizeDoseCount(raw json.RawMessage) int {
	return coerceInt(raw, defaultDoseCount, 1)
}

// NormalizeDailyTimes: tomas esperadas por día, default 1.
func NormalizeDailyTimes(raw json.RawMessage) int {
	return coerceInt(raw, defaultDailyTimes, 1)
}

// NormalizeTakenCount: tomas completadas hoy, default 0. No se limita a DailyTimes.
func NormalizeTakenCount(raw json.RawMessage) int {
	return coerceInt(raw, 0, 0)
}

// NormalizeLateCount: tomas tardías hoy, default 0.
func NormalizeLateCount(raw json.RawMessage) int {
	return coerceInt(raw, 0, 0)
}

// coerceInt acepta números y strings numéricos; trunca decimales.
// Todo lo demás, o un valor < min, devuelve def.
func coerceInt(raw json.RawMessage, def, min int) int {
	if isNull(raw) {
		return def
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return def
		}
		f, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return def
		}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 {
		return def
	}
	n := int(math.Trunc(f))
	if n < min {
		return def
	}
	return n
}

func normalizeText(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func isNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

func leftPad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
