package handler

import (
	"net/http"
	"strconv"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/config"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/history"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/logger"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/spin"
)

// SpinHandler exposes the spin orchestrator and spin history over HTTP
type SpinHandler struct {
	spinSvc    spin.Service
	historySvc history.Service
	gameCfg    *config.GameConfig
}

// NewSpinHandler creates a new spin handler
func NewSpinHandler(spinSvc spin.Service, historySvc history.Service, gameCfg *config.GameConfig) *SpinHandler {
	return &SpinHandler{
		spinSvc:    spinSvc,
		historySvc: historySvc,
		gameCfg:    gameCfg,
	}
}

// SpinRequest represents a request to start a spin
type SpinRequest struct {
	// Stake for this spin. Zero keeps the currently stored stake.
	Stake int `json:"stake" validate:"omitempty,min=0"`
}

// SpinResponse represents the response to an accepted spin request
type SpinResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// HandleSpin starts a new spin
// @Summary Start a spin
// @Description Starts a spin at the given stake. The outcome is delivered via the event stream once the spin settles.
// @Tags slot
// @Accept json
// @Produce json
// @Param request body SpinRequest true "Spin request"
// @Success 202 {object} SpinResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /slot/spin [post]
func (h *SpinHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
		return
	}

	sessionID, err := h.spinSvc.RequestSpin(r.Context(), req.Stake)
	if err != nil {
		respondServiceError(w, r, "spin", err)
		return
	}

	respondJSON(w, http.StatusAccepted, SpinResponse{
		SessionID: sessionID,
		Message:   MsgSpinAccepted,
	})
}

// AutoSpinRequest represents a request to toggle auto spin
type AutoSpinRequest struct {
	Enabled bool `json:"enabled"`
}

// HandleSetAutoSpin toggles auto spin
// @Summary Toggle auto spin
// @Description Enables or disables auto spin. Disabling cancels any pending scheduled spin; an in-flight spin settles normally.
// @Tags slot
// @Accept json
// @Produce json
// @Param request body AutoSpinRequest true "Auto spin request"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /slot/auto [post]
func (h *SpinHandler) HandleSetAutoSpin(w http.ResponseWriter, r *http.Request) {
	var req AutoSpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set auto spin"); err != nil {
		return
	}

	h.spinSvc.SetAutoSpin(r.Context(), req.Enabled)

	msg := MsgAutoSpinStopped
	if req.Enabled {
		msg = MsgAutoSpinEnabled
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
}

// TurboRequest represents a request to toggle turbo timing
type TurboRequest struct {
	Enabled bool `json:"enabled"`
}

// TurboResponse reports the turbo setting after the change
type TurboResponse struct {
	Turbo bool `json:"turbo"`
}

// HandleSetTurbo toggles turbo timing
// @Summary Toggle turbo
// @Description Enables or disables turbo timing for subsequent spins
// @Tags slot
// @Accept json
// @Produce json
// @Param request body TurboRequest true "Turbo request"
// @Success 200 {object} TurboResponse
// @Failure 400 {object} ErrorResponse
// @Router /slot/turbo [post]
func (h *SpinHandler) HandleSetTurbo(w http.ResponseWriter, r *http.Request) {
	var req TurboRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set turbo"); err != nil {
		return
	}

	turbo := h.spinSvc.SetTurbo(r.Context(), req.Enabled)
	respondJSON(w, http.StatusOK, TurboResponse{Turbo: turbo})
}

// StakeRequest represents a request to adjust the stored stake
type StakeRequest struct {
	// Delta is added to the stored stake, then snapped to the stake
	// step and clamped to the allowed range.
	Delta int `json:"delta"`
}

// StakeResponse reports the stake after adjustment
type StakeResponse struct {
	Stake int `json:"stake"`
}

// HandleAdjustStake adjusts the stored stake
// @Summary Adjust stake
// @Description Moves the stored stake by delta, step-aligned and clamped to the allowed range and current balance
// @Tags slot
// @Accept json
// @Produce json
// @Param request body StakeRequest true "Stake adjustment"
// @Success 200 {object} StakeResponse
// @Failure 400 {object} ErrorResponse
// @Router /slot/stake [post]
func (h *SpinHandler) HandleAdjustStake(w http.ResponseWriter, r *http.Request) {
	var req StakeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Adjust stake"); err != nil {
		return
	}

	stake := h.spinSvc.AdjustStake(r.Context(), req.Delta)
	respondJSON(w, http.StatusOK, StakeResponse{Stake: stake})
}

// ThemeRequest represents a request to switch the active theme
type ThemeRequest struct {
	ThemeID string `json:"theme_id" validate:"required"`
}

// HandleSetTheme switches the active theme
// @Summary Set theme
// @Description Switches the active theme for subsequent spins
// @Tags slot
// @Accept json
// @Produce json
// @Param request body ThemeRequest true "Theme request"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /slot/theme [post]
func (h *SpinHandler) HandleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set theme"); err != nil {
		return
	}

	if err := h.spinSvc.SetTheme(r.Context(), req.ThemeID); err != nil {
		respondServiceError(w, r, "set theme", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgThemeChanged})
}

// HandleGetState returns the orchestrator status snapshot
// @Summary Get engine state
// @Description Returns the session state machine, stored settings, economy snapshot and last outcome
// @Tags slot
// @Produce json
// @Success 200 {object} spin.Status
// @Router /slot/state [get]
func (h *SpinHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.spinSvc.Status())
}

// ThemeInfo describes one selectable theme
type ThemeInfo struct {
	ID               string  `json:"id"`
	DisplayName      string  `json:"display_name"`
	GlobalMultiplier float64 `json:"global_multiplier"`
	SymbolCount      int     `json:"symbol_count"`
}

// HandleGetThemes lists the selectable themes
// @Summary List themes
// @Description Returns all configured themes with their global multipliers
// @Tags slot
// @Produce json
// @Success 200 {array} ThemeInfo
// @Router /slot/themes [get]
func (h *SpinHandler) HandleGetThemes(w http.ResponseWriter, r *http.Request) {
	themes := make([]ThemeInfo, 0, len(h.gameCfg.Themes))
	for _, theme := range h.gameCfg.Themes {
		themes = append(themes, ThemeInfo{
			ID:               theme.ID,
			DisplayName:      theme.Name,
			GlobalMultiplier: theme.GlobalMultiplier,
			SymbolCount:      len(theme.SymbolIDs),
		})
	}
	respondJSON(w, http.StatusOK, themes)
}

// HandleGetHistory returns recent settled spins, newest first
// @Summary Get spin history
// @Description Returns recently settled spins, newest first
// @Tags slot
// @Produce json
// @Param limit query int false "Maximum records to return (default 20)"
// @Success 200 {array} domain.SpinRecord
// @Failure 400 {object} ErrorResponse
// @Router /slot/history [get]
func (h *SpinHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	limitStr := GetOptionalQueryParam(r, "limit", "20")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		http.Error(w, ErrMsgInvalidLimit, http.StatusBadRequest)
		return
	}

	records := h.historySvc.Recent(limit)
	logger.FromContext(r.Context()).Debug("Spin history requested", "limit", limit, "returned", len(records))
	respondJSON(w, http.StatusOK, records)
}

// HandleGetSession returns one settled spin by session ID
// @Summary Get settled spin
// @Description Returns a single settled spin by its session ID
// @Tags slot
// @Produce json
// @Param id query string true "Session ID"
// @Success 200 {object} domain.SpinRecord
// @Failure 404 {object} ErrorResponse
// @Router /slot/history/session [get]
func (h *SpinHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetQueryParam(r, w, "id")
	if !ok {
		return
	}

	record, found := h.historySvc.Get(sessionID)
	if !found {
		respondError(w, http.StatusNotFound, ErrMsgSessionNotFound)
		return
	}

	respondJSON(w, http.StatusOK, record)
}
