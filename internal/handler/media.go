package handler

import (
	"log/slog"
	"net/http"

	"inkwell/internal/domain/services"
	"inkwell/internal/httputil"
)

// MediaHandler handles media attachment and comic HTTP requests
type MediaHandler struct {
	mediaService services.MediaService
	comicService services.ComicService
	logger       *slog.Logger
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(mediaService services.MediaService, comicService services.ComicService, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
		comicService: comicService,
		logger:       logger,
	}
}

// AddMedia attaches a media asset to an entry
// POST /api/journals/{id}/media
func (h *MediaHandler) AddMedia(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	entryID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req services.AddMediaRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	asset, err := h.mediaService.AddMedia(r.Context(), userID, entryID, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, asset)
}

// ListMedia lists the assets on an entry
// GET /api/journals/{id}/media
func (h *MediaHandler) ListMedia(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	entryID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	assets, err := h.mediaService.ListMedia(r.Context(), userID, entryID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, assets)
}

// DeleteMedia removes an asset
// DELETE /api/media/{id}
func (h *MediaHandler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	assetID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.mediaService.DeleteMedia(r.Context(), userID, assetID); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateComic generates the comic for an entry
// POST /api/journals/{id}/comic
func (h *MediaHandler) CreateComic(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	entryID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req services.CreateComicRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comic, err := h.comicService.CreateComic(r.Context(), userID, entryID, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, comic)
}

// GetComic retrieves the comic for an entry
// GET /api/journals/{id}/comic
func (h *MediaHandler) GetComic(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	entryID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	comic, err := h.comicService.GetComic(r.Context(), userID, entryID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, comic)
}
