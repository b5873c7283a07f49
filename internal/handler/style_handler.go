package handler

import (
	"encoding/json"
	"net/http"

	"pdf-style-reader/internal/domain"
)

// maxGeometryObjects caps the candidate lists a single request may carry; the
// classifier itself imposes no limits.
const maxGeometryObjects = 100000

// StyleHandler serves text style classification requests.
type StyleHandler struct {
	classifier domain.StyleClassifier
	pageStyler domain.PageStyler
	logger     domain.Logger
}

func NewStyleHandler(classifier domain.StyleClassifier, pageStyler domain.PageStyler, logger domain.Logger) *StyleHandler {
	return &StyleHandler{
		classifier: classifier,
		pageStyler: pageStyler,
		logger:     logger,
	}
}

type classifyCharRequest struct {
	Bounds domain.CharacterBounds  `json:"bounds"`
	Quads  []domain.AnnotationQuad `json:"quads,omitempty"`
	Paths  []domain.PathObject     `json:"paths,omitempty"`
}

// ClassifyChar handles POST /style/char
func (h *StyleHandler) ClassifyChar(w http.ResponseWriter, r *http.Request) {
	var req classifyCharRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Quads)+len(req.Paths) > maxGeometryObjects {
		writeError(w, http.StatusBadRequest, "Too many geometry objects")
		return
	}

	dec := h.classifier.Classify(req.Bounds, req.Quads, req.Paths)
	writeJSON(w, http.StatusOK, dec)
}

// ClassifyPage handles POST /style/page
func (h *StyleHandler) ClassifyPage(w http.ResponseWriter, r *http.Request) {
	var page domain.PageGeometry
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(page.Chars)+len(page.Quads)+len(page.Paths) > maxGeometryObjects {
		writeError(w, http.StatusBadRequest, "Too many geometry objects")
		return
	}

	styled := h.pageStyler.StylePage(page)
	writeJSON(w, http.StatusOK, map[string]interface{}{"chars": styled})
}
