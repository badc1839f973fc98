package handler

import (
	"net/http"

	"github.com/osse101/RouletteCampaign_Go/internal/campaign"
)

// AdminHandler serves campaign administration. Routes are protected by the API key middleware.
type AdminHandler struct {
	service campaign.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service campaign.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// HandleCreateRoulette creates a roulette
// @Summary Create roulette
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body campaign.RouletteInput true "Roulette configuration"
// @Success 201 {object} domain.Roulette
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/admin/roulettes [post]
func (h *AdminHandler) HandleCreateRoulette(w http.ResponseWriter, r *http.Request) {
	var req campaign.RouletteInput
	if err := DecodeAndValidateRequest(r, w, &req, "Create roulette"); err != nil {
		return
	}

	rl, err := h.service.CreateRoulette(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateRouletteFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, rl)
}

// HandleUpdateRoulette replaces a roulette's configuration
// @Summary Update roulette
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Roulette ID"
// @Param request body campaign.RouletteInput true "Roulette configuration"
// @Success 200 {object} domain.Roulette
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/roulettes/{id} [put]
func (h *AdminHandler) HandleUpdateRoulette(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamID)
	if !ok {
		return
	}

	var req campaign.RouletteInput
	if err := DecodeAndValidateRequest(r, w, &req, "Update roulette"); err != nil {
		return
	}

	rl, err := h.service.UpdateRoulette(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, r, ErrMsgUpdateRouletteFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, rl)
}

// HandleCreateAward attaches an award to a roulette
// @Summary Create award
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Roulette ID"
// @Param request body campaign.AwardInput true "Award"
// @Success 201 {object} domain.Award
// @Router /api/v1/admin/roulettes/{id}/awards [post]
func (h *AdminHandler) HandleCreateAward(w http.ResponseWriter, r *http.Request) {
	rouletteID, ok := GetIDParam(r, w, ParamID)
	if !ok {
		return
	}

	var req campaign.AwardInput
	if err := DecodeAndValidateRequest(r, w, &req, "Create award"); err != nil {
		return
	}

	a, err := h.service.CreateAward(r.Context(), rouletteID, req)
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateAwardFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, a)
}

// HandleUpdateAward edits an award
// @Summary Update award
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Award ID"
// @Param request body campaign.AwardInput true "Award"
// @Success 200 {object} domain.Award
// @Router /api/v1/admin/awards/{id} [put]
func (h *AdminHandler) HandleUpdateAward(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamID)
	if !ok {
		return
	}

	var req campaign.AwardInput
	if err := DecodeAndValidateRequest(r, w, &req, "Update award"); err != nil {
		return
	}

	a, err := h.service.UpdateAward(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, r, ErrMsgUpdateAwardFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}

// HandleListWinners lists award grants of a roulette
// @Summary List winners
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Roulette ID"
// @Success 200 {array} domain.Winner
// @Router /api/v1/admin/roulettes/{id}/winners [get]
func (h *AdminHandler) HandleListWinners(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamID)
	if !ok {
		return
	}

	winners, err := h.service.ListWinners(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgListWinnersFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, winners)
}
