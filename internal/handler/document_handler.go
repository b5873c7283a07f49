package handler

import (
	"io"
	"net/http"

	"pdf-style-reader/internal/domain"

	"github.com/gorilla/mux"
)

// DocumentHandler handles document-related HTTP requests.
type DocumentHandler struct {
	documentService domain.DocumentService
	logger          domain.Logger
	maxFileSize     int64
}

func NewDocumentHandler(documentService domain.DocumentService, logger domain.Logger, maxFileSize int64) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		logger:          logger,
		maxFileSize:     maxFileSize,
	}
}

// UploadDocument handles POST /documents (multipart form with a "file" part)
func (h *DocumentHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
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

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	pdfBytes, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read file")
		return
	}

	doc, err := h.documentService.UploadDocument(user.ID, header.Filename, pdfBytes, token)
	if err != nil {
		h.logger.Error("Failed to upload document", err, "user_id", user.ID, "file", header.Filename)
		writeServiceError(w, err, "Failed to upload document")
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

// ListDocuments handles GET /documents
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
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

	docs, err := h.documentService.ListDocuments(user.ID, token)
	if err != nil {
		h.logger.Error("Failed to list documents", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve documents")
		return
	}
	if docs == nil {
		docs = make([]*domain.Document, 0)
	}
	writeJSON(w, http.StatusOK, docs)
}

// GetDocument handles GET /documents/{id}
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
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

	documentID := mux.Vars(r)["id"]
	doc, err := h.documentService.GetDocument(user.ID, documentID, token)
	if err != nil {
		h.logger.Error("Failed to get document", err, "user_id", user.ID, "document_id", documentID)
		writeServiceError(w, err, "Failed to retrieve document")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// DeleteDocument handles DELETE /documents/{id}
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
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

	documentID := mux.Vars(r)["id"]
	if err := h.documentService.DeleteDocument(user.ID, documentID, token); err != nil {
		h.logger.Error("Failed to delete document", err, "user_id", user.ID, "document_id", documentID)
		writeServiceError(w, err, "Failed to delete document")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
