package adherence

import (
	"context"
	"encoding/json"
	"net/http"

	"medication-reminder/internal/domain/cards"
	"medication-reminder/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// CardReader es lo único que el reporte necesita del Record Store.
type CardReader interface {
	Get(ctx context.Context, profile string) []cards.Card
}

func RegisterRoutes(r chi.Router, reader CardReader) {
	r.Get("/report", reportHandler(reader))
}

// reportHandler godoc
// @Summary Reporte de adherencia
// @Description Estadísticas derivadas de las tarjetas: hoy, proyección semanal/mensual, por slot horario y top 3 de olvidos. dailyStats es una semana de relleno.
// @Tags report
// @Produce json
// @Param X-Profile-ID header string false "Perfil (namespace de storage)"
// @Success 200 {object} Report
// @Router /report [get]
func reportHandler(reader CardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := reader.Get(r.Context(), middleware.GetProfile(r.Context()))
		writeJSON(w, http.StatusOK, Aggregate(list))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
