package citydetail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/FACorreiaa/terradart-api/internal/types"
)

// Handler serves the city-detail endpoints: a combined JSON aggregate and a
// Server-Sent Events stream that delivers each section as it settles.
type Handler struct {
	svc      Service
	logger   *slog.Logger
	validate *validator.Validate
}

func NewHandler(svc Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		validate: validator.New(),
	}
}

func (h *Handler) keyFromRequest(r *http.Request) (types.CityKey, []types.Section, error) {
	key := types.CityKey{
		City:    strings.TrimSpace(r.PathValue("city")),
		State:   strings.TrimSpace(r.URL.Query().Get("state")),
		Country: strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("country"))),
	}
	if err := h.validate.Struct(key); err != nil {
		return key, nil, fmt.Errorf("%w: %s", types.ErrBadRequest, err)
	}

	var sections []types.Section
	if raw := r.URL.Query().Get("sections"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			section := types.Section(strings.TrimSpace(part))
			if !types.ValidSection(section) {
				return key, nil, fmt.Errorf("%w: unknown section %q", types.ErrBadRequest, part)
			}
			sections = append(sections, section)
		}
	}
	return key, sections, nil
}

// GetCityDetail handles GET /city/{city}/detail: every requested section is
// fetched concurrently, but the response waits for all of them and returns
// one merged aggregate.
func (h *Handler) GetCityDetail(w http.ResponseWriter, r *http.Request) {
	key, sections, err := h.keyFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	detail, err := h.svc.GetCityDetail(r.Context(), key, sections)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(detail); err != nil {
		h.logger.ErrorContext(r.Context(), "encoding city detail", slog.Any("error", err))
	}
}

// StreamCityDetail handles GET /city/{city}/detail/stream as Server-Sent
// Events: one event per section the moment it settles, then a final "done"
// event. Client disconnect cancels the load cycle; nothing is delivered for
// sections settling after that.
func (h *Handler) StreamCityDetail(w http.ResponseWriter, r *http.Request) {
	key, sections, err := h.keyFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if len(sections) == 0 {
		sections = types.AllSections()
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.writeError(w, r, errors.New("streaming unsupported"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Callback delivery is serialized by the load cycle, so writing to the
	// response from inside the callbacks is safe.
	settled := make(chan types.Section, len(sections))
	cancel := h.svc.Load(r.Context(), key, sections, Callbacks{
		OnSuccess: func(res types.SectionResult) {
			h.writeEvent(w, flusher, string(res.Section), res)
		},
		OnError: func(section types.Section, message string) {
			h.writeEvent(w, flusher, "error", map[string]string{
				"section": string(section),
				"message": message,
			})
		},
		OnFinally: func(section types.Section) {
			settled <- section
		},
	})
	defer cancel()

	for remaining := len(sections); remaining > 0; remaining-- {
		select {
		case <-settled:
		case <-r.Context().Done():
			return
		}
	}
	h.writeEvent(w, flusher, "done", map[string]int{"sections": len(sections)})
}

func (h *Handler) writeEvent(w http.ResponseWriter, flusher http.Flusher, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("encoding stream event", slog.String("event", event), slog.Any("error", err))
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	flusher.Flush()
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, types.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, context.Canceled):
		status = 499 // client closed request
	}

	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
