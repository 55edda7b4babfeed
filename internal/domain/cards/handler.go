package cards

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"medication-reminder/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/cards", func(cr chi.Router) {
		cr.Get("/", listCardsHandler(svc))
		cr.Put("/", replaceAllCardsHandler(svc))
		cr.Post("/", addCardHandler(svc))

		// Contadores del día
		cr.Post("/reset", resetDayHandler(svc))

		cr.Put("/{index}", replaceCardHandler(svc))
		cr.Delete("/{index}", removeCardHandler(svc))
		cr.Post("/{index}/intake", recordIntakeHandler(svc))
	})
}

// cardResponse agrega el color resuelto de la categoría.
type cardResponse struct {
	Card
	Tone string `json:"tone"`
}

type recordIntakeRequest struct {
	Late bool `json:"late"`
}

// listCardsHandler godoc
// @Summary Listar tarjetas de medicación
// @Description Devuelve las tarjetas guardadas del perfil. Storage vacío o corrupto devuelve una lista vacía.
// @Tags cards
// @Produce json
// @Param X-Profile-ID header string false "Perfil (namespace de storage)"
// @Success 200 {array} cardResponse
// @Router /cards [get]
func listCardsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := svc.List(r.Context(), middleware.GetProfile(r.Context()))
		writeJSON(w, http.StatusOK, toCardResponses(list))
	}
}

// replaceAllCardsHandler godoc
// @Summary Reemplazar todas las tarjetas
// @Tags cards
// @Accept json
// @Produce json
// @Param payload body []Card true "Lista completa"
// @Success 200 {array} cardResponse
// @Failure 400 {string} string "invalid json"
// @Router /cards [put]
func replaceAllCardsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in []Card
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		out := svc.ReplaceAll(r.Context(), middleware.GetProfile(r.Context()), in)
		writeJSON(w, http.StatusOK, toCardResponses(out))
	}
}

// addCardHandler godoc
// @Summary Agregar tarjeta
// @Tags cards
// @Accept json
// @Produce json
// @Param payload body Card true "Tarjeta; title obligatorio"
// @Success 201 {object} cardResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 500 {string} string "internal error"
// @Router /cards [post]
func addCardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in Card
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Add(r.Context(), middleware.GetProfile(r.Context()), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toCardResponse(c))
	}
}

// replaceCardHandler godoc
// @Summary Editar tarjeta por posición
// @Tags cards
// @Accept json
// @Produce json
// @Param index path int true "Posición en la lista (0-based)"
// @Param payload body Card true "Tarjeta"
// @Success 200 {object} cardResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "card not found"
// @Router /cards/{index} [put]
func replaceCardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := parseIndex(w, r)
		if !ok {
			return
		}

		var in Card
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Replace(r.Context(), middleware.GetProfile(r.Context()), index, in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toCardResponse(c))
	}
}

// removeCardHandler godoc
// @Summary Eliminar tarjeta por posición
// @Tags cards
// @Param index path int true "Posición en la lista (0-based)"
// @Success 204
// @Failure 404 {string} string "card not found"
// @Router /cards/{index} [delete]
func removeCardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := parseIndex(w, r)
		if !ok {
			return
		}

		if err := svc.Remove(r.Context(), middleware.GetProfile(r.Context()), index); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// recordIntakeHandler godoc
// @Summary Registrar una toma de hoy
// @Tags cards
// @Accept json
// @Produce json
// @Param index path int true "Posición en la lista (0-based)"
// @Param payload body recordIntakeRequest false "late=true cuenta además como tardía"
// @Success 200 {object} cardResponse
// @Failure 404 {string} string "card not found"
// @Router /cards/{index}/intake [post]
func recordIntakeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := parseIndex(w, r)
		if !ok {
			return
		}

		// body opcional
		var req recordIntakeRequest
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
		}

		c, err := svc.RecordIntake(r.Context(), middleware.GetProfile(r.Context()), index, req.Late)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toCardResponse(c))
	}
}

// resetDayHandler godoc
// @Summary Reiniciar contadores del día
// @Tags cards
// @Produce json
// @Success 200 {array} cardResponse
// @Router /cards/reset [post]
func resetDayHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ResetDay(r.Context(), middleware.GetProfile(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toCardResponses(list))
	}
}

func parseIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "index must be an integer", http.StatusBadRequest)
		return 0, false
	}
	return n, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrIndexOutOfRange):
		http.Error(w, "card not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toCardResponse(c Card) cardResponse {
	return cardResponse{Card: c, Tone: c.Category.Tone()}
}

func toCardResponses(list []Card) []cardResponse {
	out := make([]cardResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCardResponse(c))
	}
	return out
}

// writeJSON está duplicado en cada módulo, igual que en el resto de handlers.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
