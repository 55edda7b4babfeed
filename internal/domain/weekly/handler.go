package weekly

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"medication-reminder/internal/domain/intake"
	"medication-reminder/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type HistoryReader interface {
	History(ctx context.Context, profile string) intake.History
}

// weekResponse: selected solo viene si se pidió ?day=.
type weekResponse struct {
	Week     Week       `json:"week"`
	Selected *DayDetail `json:"selected,omitempty"`
}

// RegisterRoutes; now puede ser nil (usa time.Now).
func RegisterRoutes(r chi.Router, reader HistoryReader, now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	r.Get("/weekly", weeklyHandler(reader, now))
}

// weeklyHandler godoc
// @Summary Vista semanal de tomas manuales
// @Description Resumen por día (domingo a sábado) de la semana que contiene `date`. Con `day` devuelve además los eventos de ese día ordenados por hora.
// @Tags weekly
// @Produce json
// @Param X-Profile-ID header string false "Perfil (namespace de storage)"
// @Param date query string false "Fecha de referencia YYYY-MM-DD (default hoy)"
// @Param day query string false "Día a detallar: sunday..saturday"
// @Success 200 {object} weekResponse
// @Failure 400 {string} string "date must be YYYY-MM-DD / unknown day"
// @Router /weekly [get]
func weeklyHandler(reader HistoryReader, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := now()
		if v := strings.TrimSpace(r.URL.Query().Get("date")); v != "" {
			t, err := time.ParseInLocation(intake.DateLayout, v, ref.Location())
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			ref = t
		}

		week := Group(reader.History(r.Context(), middleware.GetProfile(r.Context())), ref)
		resp := weekResponse{Week: week}

		if v := strings.TrimSpace(r.URL.Query().Get("day")); v != "" {
			detail, err := week.Select(v)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			resp.Selected = &detail
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
