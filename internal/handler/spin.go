package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spinworks/SlotEngine_Go/internal/logger"
	"github.com/spinworks/SlotEngine_Go/internal/spin"
)

// SpinHandler handles spin-related HTTP requests
type SpinHandler struct {
	service spin.Service
}

// NewSpinHandler creates a new spin handler
func NewSpinHandler(service spin.Service) *SpinHandler {
	return &SpinHandler{service: service}
}

// SpinRequest represents a request to run one spin
type SpinRequest struct {
	UserID    string `json:"user_id" validate:"required,max=128"`
	ThemeKey  string `json:"theme_key" validate:"required,themekey,max=64"`
	BetAmount int64  `json:"bet_amount" validate:"required,gt=0"`
}

// HandleSpin processes a spin request
// @Summary Run a spin
// @Description Generates a spin outcome, settles the bet against the user's wallet and persists the result
// @Tags spin
// @Accept json
// @Produce json
// @Param request body SpinRequest true "Spin request"
// @Success 201 {object} spin.Result
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /spin [post]
func (h *SpinHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
		return
	}

	log.Debug("Spin requested", "user_id", req.UserID, "theme", req.ThemeKey, "bet", req.BetAmount)

	result, err := h.service.Spin(ctx, req.UserID, req.ThemeKey, req.BetAmount)
	if err != nil {
		respondServiceError(w, r, "Spin", err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// HandleGetSpin returns a stored spin by ID
// @Summary Get a spin
// @Tags spin
// @Produce json
// @Param id path string true "Spin ID"
// @Success 200 {object} domain.SpinRecord
// @Failure 404 {object} ErrorResponse
// @Router /spin/{id} [get]
func (h *SpinHandler) HandleGetSpin(w http.ResponseWriter, r *http.Request) {
	spinID := chi.URLParam(r, "id")

	record, err := h.service.GetSpin(r.Context(), spinID)
	if err != nil {
		respondServiceError(w, r, "Get spin", err)
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// HandleGetHistory returns the user's recent spins, newest first
// @Summary Spin history
// @Tags spin
// @Produce json
// @Param user_id query string true "User ID"
// @Param limit query int false "Maximum records to return"
// @Success 200 {array} domain.SpinRecord
// @Router /spin/history [get]
func (h *SpinHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}
	limit, ok := GetLimitParam(r, w, spin.DefaultHistoryLimit)
	if !ok {
		return
	}

	records, err := h.service.GetHistory(r.Context(), userID, limit)
	if err != nil {
		respondServiceError(w, r, "Get spin history", err)
		return
	}

	respondJSON(w, http.StatusOK, records)
}

// HandleAudit replays a stored spin and reports whether the persisted
// outcome matches the regenerated one
// @Summary Audit a spin
// @Tags spin
// @Produce json
// @Param id path string true "Spin ID"
// @Success 200 {object} domain.AuditResult
// @Failure 404 {object} ErrorResponse
// @Router /spin/{id}/audit [get]
func (h *SpinHandler) HandleAudit(w http.ResponseWriter, r *http.Request) {
	spinID := chi.URLParam(r, "id")

	result, err := h.service.Audit(r.Context(), spinID)
	if err != nil {
		respondServiceError(w, r, "Audit spin", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
