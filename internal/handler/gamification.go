package handler

import (
	"log/slog"
	"net/http"

	"inkwell/internal/domain/services"
	"inkwell/internal/httputil"
)

// GamificationHandler handles streak and achievement HTTP requests
type GamificationHandler struct {
	gamificationService services.GamificationService
	logger              *slog.Logger
}

// NewGamificationHandler creates a new gamification handler
func NewGamificationHandler(gamificationService services.GamificationService, logger *slog.Logger) *GamificationHandler {
	return &GamificationHandler{
		gamificationService: gamificationService,
		logger:              logger,
	}
}

// GetStreak returns the user's streak counters
// GET /api/streak
func (h *GamificationHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	streak, err := h.gamificationService.GetStreak(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, streak)
}

// ListBadges lists every badge definition
// GET /api/badges
func (h *GamificationHandler) ListBadges(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	badges, err := h.gamificationService.ListBadges(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, badges)
}

// ListAchievements lists the user's unlocked badges
// GET /api/achievements
func (h *GamificationHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	achievements, err := h.gamificationService.ListAchievements(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, achievements)
}
