package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spinworks/SlotEngine_Go/internal/theme"
)

// ThemeHandler handles theme catalog HTTP requests
type ThemeHandler struct {
	registry *theme.Registry
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(registry *theme.Registry) *ThemeHandler {
	return &ThemeHandler{registry: registry}
}

// ThemeListResponse lists the available theme keys
type ThemeListResponse struct {
	Themes []string `json:"themes"`
}

// HandleListThemes returns the keys of all loadable themes
// @Summary List themes
// @Tags theme
// @Produce json
// @Success 200 {object} ThemeListResponse
// @Router /themes [get]
func (h *ThemeHandler) HandleListThemes(w http.ResponseWriter, r *http.Request) {
	keys, err := h.registry.Keys()
	if err != nil {
		respondServiceError(w, r, "List themes", err)
		return
	}

	respondJSON(w, http.StatusOK, ThemeListResponse{Themes: keys})
}

// HandleGetTheme returns one validated theme configuration
// @Summary Get theme
// @Tags theme
// @Produce json
// @Param key path string true "Theme key"
// @Success 200 {object} domain.ThemeConfig
// @Failure 404 {object} ErrorResponse
// @Router /themes/{key} [get]
func (h *ThemeHandler) HandleGetTheme(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	cfg, err := h.registry.Get(key)
	if err != nil {
		respondServiceError(w, r, "Get theme", err)
		return
	}

	respondJSON(w, http.StatusOK, cfg)
}

// HandleInvalidateTheme drops a theme from the cache so the next request
// reloads it from disk
// @Summary Invalidate theme cache
// @Tags theme
// @Produce json
// @Param key path string true "Theme key"
// @Success 200 {object} SuccessResponse
// @Router /themes/{key}/invalidate [post]
func (h *ThemeHandler) HandleInvalidateTheme(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	h.registry.Invalidate(key)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Theme cache invalidated"})
}
