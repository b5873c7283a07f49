package handler

import (
	"encoding/json"
	"net/http"

	"pdf-style-reader/internal/domain"

	"github.com/gorilla/mux"
)

// MarkupHandler handles markup-related HTTP requests.
type MarkupHandler struct {
	markupService domain.MarkupService
	logger        domain.Logger
}

func NewMarkupHandler(markupService domain.MarkupService, logger domain.Logger) *MarkupHandler {
	return &MarkupHandler{
		markupService: markupService,
		logger:        logger,
	}
}

type createMarkupRequest struct {
	DocumentID string               `json:"document_id"`
	Quote      string               `json:"quote"`
	Kind       domain.MarkupSubtype `json:"kind,omitempty"`
	Color      *domain.Color        `json:"color,omitempty"`
	PageNumber *int                 `json:"page_number,omitempty"`
}

// CreateMarkup handles POST /markups
func (h *MarkupHandler) CreateMarkup(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}
	token, ok := GetTokenFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token not found in context")
		return
	}

	var req createMarkupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.DocumentID == "" {
		writeError(w, http.StatusBadRequest, "document_id is required")
		return
	}
	if req.Quote == "" {
		writeError(w, http.StatusBadRequest, "quote is required")
		return
	}

	created, err := h.markupService.CreateMarkup(user.ID, &domain.Markup{
		DocumentID: req.DocumentID,
		Quote:      req.Quote,
		Kind:       req.Kind,
		Color:      req.Color,
		PageNumber: req.PageNumber,
	}, token)
	if err != nil {
		h.logger.Error("Failed to create markup", err, "user_id", user.ID, "document_id", req.DocumentID)
		writeServiceError(w, err, "Failed to create markup")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListMarkups handles GET /markups?document_id=...
func (h *MarkupHandler) ListMarkups(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}
	token, ok := GetTokenFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token not found in context")
		return
	}

	documentID := r.URL.Query().Get("document_id")
	var docPtr *string
	if documentID != "" {
		docPtr = &documentID
	}

	markups, err := h.markupService.ListMarkups(user.ID, docPtr, token)
	if err != nil {
		h.logger.Error("Failed to list markups", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve markups")
		return
	}
	if markups == nil {
		markups = make([]*domain.Markup, 0)
	}
	writeJSON(w, http.StatusOK, markups)
}

// DeleteMarkup handles DELETE /markups/{id}
func (h *MarkupHandler) DeleteMarkup(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}
	token, ok := GetTokenFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token not found in context")
		return
	}

	markupID := mux.Vars(r)["id"]
	if markupID == "" {
		writeError(w, http.StatusBadRequest, "Markup ID is required")
		return
	}

	if err := h.markupService.DeleteMarkup(user.ID, markupID, token); err != nil {
		h.logger.Error("Failed to delete markup", err, "user_id", user.ID, "markup_id", markupID)
		writeServiceError(w, err, "Failed to delete markup")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
