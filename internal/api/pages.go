package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Priya8975/travel-agency/internal/domain"
	"github.com/Priya8975/travel-agency/internal/render"
	"github.com/go-chi/chi/v5"
)

type PageHandler struct {
	store    CatalogStore
	renderer *render.Renderer
	logger   *slog.Logger
}

func NewPageHandler(s CatalogStore, renderer *render.Renderer, logger *slog.Logger) *PageHandler {
	return &PageHandler{store: s, renderer: renderer, logger: logger}
}

// Index renders every continent plus the featured destinations.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	continents, err := h.store.ListContinents(r.Context())
	if err != nil {
		h.serverError(w, "failed to list continents", err)
		return
	}

	featured, err := h.store.ListFeaturedDestinations(r.Context())
	if err != nil {
		h.serverError(w, "failed to list featured destinations", err)
		return
	}

	h.render(w, http.StatusOK, func() ([]byte, error) {
		return h.renderer.Index(continents, featured)
	})
}

func (h *PageHandler) Continent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	continent, err := h.store.GetContinent(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.notFound(w, fmt.Sprintf("We could not find a continent with id %d.", id))
			return
		}
		h.serverError(w, "failed to get continent", err)
		return
	}

	destinations, err := h.store.ListDestinationsByContinent(r.Context(), continent.ID)
	if err != nil {
		h.serverError(w, "failed to list continent destinations", err)
		return
	}

	h.render(w, http.StatusOK, func() ([]byte, error) {
		return h.renderer.Continent(*continent, destinations)
	})
}

func (h *PageHandler) Destination(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	destination, err := h.store.GetDestination(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.notFound(w, fmt.Sprintf("We could not find a destination with id %d.", id))
			return
		}
		h.serverError(w, "failed to get destination", err)
		return
	}

	continent, err := h.store.GetContinent(r.Context(), destination.ContinentID)
	if err != nil {
		// The foreign key makes this unreachable unless rows are removed by hand.
		h.logger.Warn("destination continent lookup failed",
			"destination_id", destination.ID,
			"continent_id", destination.ContinentID,
			"error", err,
		)
		continent = nil
	}

	h.render(w, http.StatusOK, func() ([]byte, error) {
		return h.renderer.Destination(*destination, continent)
	})
}

// NotFound is the router-wide handler for unmatched paths.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, "The page you are looking for does not exist.")
}

func (h *PageHandler) notFound(w http.ResponseWriter, message string) {
	h.render(w, http.StatusNotFound, func() ([]byte, error) {
		return h.renderer.NotFound(message)
	})
}

func (h *PageHandler) render(w http.ResponseWriter, status int, fn func() ([]byte, error)) {
	body, err := fn()
	if err != nil {
		h.serverError(w, "failed to render page", err)
		return
	}
	respondHTML(w, status, body)
}

func (h *PageHandler) serverError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// pathID parses the {id} URL parameter. Ids are int4 columns, so anything
// outside the int32 range cannot exist and is treated as unknown.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil || id < 0 {
		return 0, false
	}
	return int(id), true
}
