package service

import (
	"fmt"
	"strings"
	"time"

	"pdf-style-reader/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// pageTextTimeout bounds how long a single page extraction may take; MuPDF
// can stall on damaged content streams.
const pageTextTimeout = 90 * time.Second

// PDFProcessor wraps the native rendering engine (MuPDF via go-fitz) for
// document-level operations: metadata and per-page plain text. Per-character
// geometry is never computed here; style classification receives geometry
// from the engine's caller.
type PDFProcessor struct {
	logger domain.Logger
}

func NewPDFProcessor(logger domain.Logger) *PDFProcessor {
	return &PDFProcessor{logger: logger}
}

// ProcessPDF opens a PDF from memory and returns its page texts and metadata.
// A page that fails or times out yields an empty string so page numbering
// stays intact.
func (p *PDFProcessor) ProcessPDF(pdfBytes []byte) ([]string, domain.DocumentMetadata, error) {
	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return nil, domain.DocumentMetadata{}, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	meta := domain.DocumentMetadata{PageCount: doc.NumPage()}
	docMetadata := doc.Metadata()
	if title, ok := docMetadata["title"]; ok {
		meta.Title = title
	}
	if author, ok := docMetadata["author"]; ok {
		meta.Author = author
	}

	type pageResult struct {
		text string
		err  error
	}

	pages := make([]string, 0, meta.PageCount)
	for pageNum := 0; pageNum < meta.PageCount; pageNum++ {
		resultCh := make(chan pageResult, 1)
		go func(idx int) {
			text, err := doc.Text(idx)
			resultCh <- pageResult{text: text, err: err}
		}(pageNum)

		var text string
		select {
		case res := <-resultCh:
			text, err = res.text, res.err
		case <-time.After(pageTextTimeout):
			p.logger.Warn("Page text extraction timeout; using empty page",
				"page", pageNum+1, "total", meta.PageCount)
			go func() { <-resultCh }() // drain so the goroutine can exit
			pages = append(pages, "")
			continue
		}
		if err != nil {
			p.logger.Warn("Failed to extract text from page",
				"page", pageNum+1, "total", meta.PageCount, "error", err)
			pages = append(pages, "")
			continue
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	return pages, meta, nil
}
