package lookup

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/FACorreiaa/terradart-api/internal/types"
	"github.com/FACorreiaa/terradart-api/internal/upstream"
)

// Handler serves the selection-form lookup lists and the region pick.
type Handler struct {
	svc    Service
	logger *slog.Logger
}

func NewHandler(svc Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.svc.Countries(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, countries)
}

func (h *Handler) States(w http.ResponseWriter, r *http.Request) {
	states, err := h.svc.States(r.Context(), r.PathValue("iso2"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, states)
}

func (h *Handler) CitiesByCountry(w http.ResponseWriter, r *http.Request) {
	cities, err := h.svc.CitiesByCountry(r.Context(), r.PathValue("iso2"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, cities)
}

func (h *Handler) CitiesByState(w http.ResponseWriter, r *http.Request) {
	cities, err := h.svc.CitiesByState(r.Context(), r.PathValue("iso2"), r.PathValue("state"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, cities)
}

func (h *Handler) CityByRegion(w http.ResponseWriter, r *http.Request) {
	capital := r.URL.Query().Get("capital") == "true"
	city, err := h.svc.CityByRegion(r.Context(), r.PathValue("region"), capital)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, city)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.ErrorContext(r.Context(), "encoding lookup response", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, types.ErrBadRequest):
		status = http.StatusBadRequest
	case upstream.IsStatus(err, http.StatusNotFound):
		status = http.StatusNotFound
	}

	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "lookup request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
