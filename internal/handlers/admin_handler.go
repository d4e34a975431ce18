package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"angadBack/internal/models"
	"angadBack/internal/services"
)

type AdminHandler struct {
	Service *services.AdminService
}

// parseListFilter reads the optional query parameters of the admin
// search. Unknown statut/service values are rejected instead of being
// treated as "no filter".
func parseListFilter(r *http.Request) (models.ReclamationFilter, error) {
	q := r.URL.Query()

	filter := models.ReclamationFilter{
		Query: q.Get("q"),
		Sort:  q.Get("sort"),
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err == nil {
			filter.Page = page
		}
	}
	if v := q.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err == nil {
			filter.Size = size
		}
	}
	if v := q.Get("statut"); v != "" {
		statut, err := models.ParseStatut(v)
		if err != nil {
			return models.ReclamationFilter{}, err
		}
		filter.Statut = &statut
	}
	if v := q.Get("service"); v != "" {
		service, err := models.ParseServiceType(v)
		if err != nil {
			return models.ReclamationFilter{}, err
		}
		filter.Service = &service
	}
	return filter, nil
}

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		respondError(w, err)
		return
	}

	page, err := h.Service.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(page)
}

func (h *AdminHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid reclamation ID", http.StatusBadRequest)
		return
	}

	rec, err := h.Service.Detail(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
