package schedule

import (
	"context"
	"encoding/json"
	"net/http"

	"medication-reminder/internal/domain/cards"
	"medication-reminder/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type CardReader interface {
	Get(ctx context.Context, profile string) []cards.Card
}

func RegisterRoutes(r chi.Router, reader CardReader) {
	r.Get("/schedule/today", todayHandler(reader))
}

// todayHandler godoc
// @Summary Tomas de hoy
// @Description Una entrada por (tarjeta, horario), ordenadas por hora. pending=true devuelve solo las que faltan.
// @Tags schedule
// @Produce json
// @Param X-Profile-ID header string false "Perfil (namespace de storage)"
// @Param pending query bool false "Solo pendientes"
// @Success 200 {array} Entry
// @Router /schedule/today [get]
func todayHandler(reader CardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := Today(reader.Get(r.Context(), middleware.GetProfile(r.Context())))
		if r.URL.Query().Get("pending") == "true" {
			entries = Pending(entries)
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
