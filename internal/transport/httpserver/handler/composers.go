package handler

import (
	"errors"
	"net/http"
	"strings"

	composerdomain "record-app-go/internal/domain/composer"

	"github.com/go-chi/chi/v5"
)

type createComposerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type composerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (h *Handlers) CreateComposer(w http.ResponseWriter, r *http.Request) {
	var req createComposerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "firstName and lastName are required")
		return
	}

	created, err := h.Composers.Create(r.Context(), composerdomain.CreateComposerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.log.InternalError("composers.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toComposerResponse(*created))
}

func (h *Handlers) ListComposers(w http.ResponseWriter, r *http.Request) {
	composers, err := h.Composers.List(r.Context())
	if err != nil {
		h.log.InternalError("composers.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]composerResponse, 0, len(composers))
	for _, item := range composers {
		response = append(response, toComposerResponse(item))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetComposer(w http.ResponseWriter, r *http.Request) {
	composerID := chi.URLParam(r, "id")

	found, err := h.Composers.GetByID(r.Context(), composerID)
	if err != nil {
		switch {
		case errors.Is(err, composerdomain.ErrInvalidID):
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid composer id")
		case errors.Is(err, composerdomain.ErrComposerNotFound):
			h.log.BusinessError("composers.get: composer not found", err, "composer_id", composerID)
			writeError(w, http.StatusNotFound, "composer_not_found", "composer not found")
		default:
			h.log.InternalError("composers.get: get failed", err, "composer_id", composerID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toComposerResponse(*found))
}

func toComposerResponse(item composerdomain.Composer) composerResponse {
	return composerResponse{
		ID:        item.ID.Hex(),
		FirstName: item.FirstName,
		LastName:  item.LastName,
	}
}
