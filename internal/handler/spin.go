package handler

import (
	"net/http"

	"github.com/osse101/RouletteCampaign_Go/internal/domain"
	"github.com/osse101/RouletteCampaign_Go/internal/logger"
	"github.com/osse101/RouletteCampaign_Go/internal/spin"
)

// SpinHandler serves validate and spin
type SpinHandler struct {
	service spin.Service
}

// NewSpinHandler creates a new spin handler
func NewSpinHandler(service spin.Service) *SpinHandler {
	return &SpinHandler{service: service}
}

// ValidateRequest is the body of a validate call
type ValidateRequest struct {
	Email      string `json:"email" validate:"required,email,max=254"`
	Name       string `json:"name" validate:"required,max=255"`
	RouletteID int64  `json:"roulette" validate:"required,gt=0"`
}

// SpinRequest is the body of a spin call
type SpinRequest struct {
	Email       string `json:"email" validate:"required,email,max=254"`
	Name        string `json:"name" validate:"required,max=255"`
	RouletteID  int64  `json:"roulette" validate:"required,gt=0"`
	IsExtraSpin bool   `json:"is_extra_spin"`
}

// HandleValidate upserts the participant and reports whether each kind of spin is available
// @Summary Validate participant
// @Tags spins
// @Accept json
// @Produce json
// @Param request body ValidateRequest true "Participant and roulette"
// @Success 200 {object} domain.Eligibility
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/roulettes/validate [post]
func (h *SpinHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Validate"); err != nil {
		return
	}

	res, err := h.service.Validate(r.Context(), domain.SpinRequest{
		Email:      req.Email,
		Name:       req.Name,
		RouletteID: req.RouletteID,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgValidateFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, res.Eligibility)
}

// HandleSpin records a spin and returns the award won, if any
// @Summary Spin
// @Tags spins
// @Accept json
// @Produce json
// @Param request body SpinRequest true "Participant, roulette and spin kind"
// @Success 200 {object} domain.SpinResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 429 {object} SpinDeniedResponse
// @Router /api/v1/roulettes/spin [post]
func (h *SpinHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
		return
	}

	res, err := h.service.Spin(r.Context(), domain.SpinRequest{
		Email:       req.Email,
		Name:        req.Name,
		RouletteID:  req.RouletteID,
		IsExtraSpin: req.IsExtraSpin,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgSpinFailed, err)
		return
	}

	logger.FromContext(r.Context()).Debug("Spin handled", "won", res.Award != nil)
	respondJSON(w, http.StatusOK, res)
}
