package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"medication-reminder/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, store *Store) {
	r.Post("/session/notice", setNoticeHandler(store))
	r.Get("/session/notice", takeNoticeHandler(store))
}

// setNoticeHandler godoc
// @Summary Dejar un aviso para la próxima carga
// @Tags session
// @Accept json
// @Param payload body Notice true "type success|error|info|warning, duration en ms"
// @Success 204
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /session/notice [post]
func setNoticeHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var n Notice
		if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := store.Set(r.Context(), middleware.GetProfile(r.Context()), n); err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// takeNoticeHandler godoc
// @Summary Consumir el aviso pendiente
// @Description Devuelve el aviso y lo borra. 204 si no hay ninguno.
// @Tags session
// @Produce json
// @Success 200 {object} Notice
// @Success 204
// @Router /session/notice [get]
func takeNoticeHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, ok := store.Take(r.Context(), middleware.GetProfile(r.Context()))
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(n)
	}
}
