package intake

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"medication-reminder/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/intake", func(ir chi.Router) {
		ir.Get("/history", listHistoryHandler(svc))
		ir.Post("/history", recordEventHandler(svc))

		ir.Get("/groups", listGroupsHandler(svc))
		ir.Post("/groups", createGroupHandler(svc))
		ir.Delete("/groups/{groupID}", deleteGroupHandler(svc))
	})
}

type recordEventRequest struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Time   string `json:"time"` // HH:MM
	Name   string `json:"name"`
	Status Status `json:"status" enums:"success,miss,late"`
}

type createGroupRequest struct {
	Name       string   `json:"name"`
	Times      []string `json:"times"`
	CardTitles []string `json:"cardTitles"`
}

type groupResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Times      []string  `json:"times"`
	CardTitles []string  `json:"cardTitles"`
	CreatedAt  time.Time `json:"createdAt"`
}

// listHistoryHandler godoc
// @Summary Historial de tomas manuales
// @Tags intake
// @Produce json
// @Param X-Profile-ID header string false "Perfil (namespace de storage)"
// @Success 200 {object} History
// @Router /intake/history [get]
func listHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.History(r.Context(), middleware.GetProfile(r.Context())))
	}
}

// recordEventHandler godoc
// @Summary Registrar toma manual
// @Tags intake
// @Accept json
// @Produce json
// @Param payload body recordEventRequest true "date YYYY-MM-DD, time HH:MM, status success|miss|late"
// @Success 201 {object} DoseEvent
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /intake/history [post]
func recordEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ev, err := svc.Record(r.Context(), middleware.GetProfile(r.Context()), req.Date, DoseEvent{
			Time:   req.Time,
			Name:   req.Name,
			Status: req.Status,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, ev)
	}
}

// listGroupsHandler godoc
// @Summary Listar grupos de toma
// @Tags intake
// @Produce json
// @Success 200 {array} groupResponse
// @Router /intake/groups [get]
func listGroupsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups := svc.Groups(r.Context(), middleware.GetProfile(r.Context()))
		out := make([]groupResponse, 0, len(groups))
		for _, g := range groups {
			out = append(out, toGroupResponse(g))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createGroupHandler godoc
// @Summary Crear grupo de toma
// @Tags intake
// @Accept json
// @Produce json
// @Param payload body createGroupRequest true "Grupo"
// @Success 201 {object} groupResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /intake/groups [post]
func createGroupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createGroupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		g, err := svc.CreateGroup(r.Context(), middleware.GetProfile(r.Context()), CreateGroupInput{
			Name:       req.Name,
			Times:      req.Times,
			CardTitles: req.CardTitles,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toGroupResponse(g))
	}
}

// deleteGroupHandler godoc
// @Summary Eliminar grupo de toma
// @Tags intake
// @Param groupID path string true "ID del grupo"
// @Success 204
// @Failure 404 {string} string "group not found"
// @Router /intake/groups/{groupID} [delete]
func deleteGroupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.DeleteGroup(r.Context(), middleware.GetProfile(r.Context()), chi.URLParam(r, "groupID"))
		if err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "group not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toGroupResponse(g Group) groupResponse {
	return groupResponse{
		ID:         g.ID,
		Name:       g.Name,
		Times:      g.Times,
		CardTitles: g.CardTitles,
		CreatedAt:  g.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
