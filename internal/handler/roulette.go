package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/RouletteCampaign_Go/internal/roulette"
)

// RouletteHandler serves the public roulette read model
type RouletteHandler struct {
	service roulette.Service
}

// NewRouletteHandler creates a new roulette handler
func NewRouletteHandler(service roulette.Service) *RouletteHandler {
	return &RouletteHandler{service: service}
}

// HandleList lists roulettes with their active awards
// @Summary List roulettes
// @Description Returns every roulette with its active awards. Award thresholds are never exposed.
// @Tags roulettes
// @Produce json
// @Success 200 {array} domain.RouletteView
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/roulettes [get]
func (h *RouletteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgListRoulettesFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, views)
}

// HandleGet returns one roulette by slug
// @Summary Get roulette
// @Tags roulettes
// @Produce json
// @Param slug path string true "Roulette slug"
// @Success 200 {object} domain.RouletteView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/roulettes/{slug} [get]
func (h *RouletteHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, ParamSlug))
	if err != nil {
		respondServiceError(w, r, ErrMsgGetRouletteFailed, err)
		return
	}
	if view == nil {
		respondError(w, http.StatusNotFound, ErrMsgRouletteNotFoundError)
		return
	}
	respondJSON(w, http.StatusOK, view)
}
