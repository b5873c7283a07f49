package service

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"pdf-style-reader/internal/domain"
	apperrors "pdf-style-reader/pkg/errors"

	"github.com/google/uuid"
)

type DocumentServiceImpl struct {
	repo      domain.DocumentRepository
	storage   StorageService
	processor domain.PDFProcessor
	logger    domain.Logger
}

func NewDocumentService(
	repo domain.DocumentRepository,
	storage StorageService,
	processor domain.PDFProcessor,
	logger domain.Logger,
) domain.DocumentService {
	return &DocumentServiceImpl{
		repo:      repo,
		storage:   storage,
		processor: processor,
		logger:    logger,
	}
}

func (s *DocumentServiceImpl) UploadDocument(userID string, fileName string, pdfBytes []byte, token string) (*domain.Document, error) {
	if len(pdfBytes) == 0 || !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		return nil, domain.ErrInvalidFile
	}

	_, meta, err := s.processor.ProcessPDF(pdfBytes)
	if err != nil {
		return nil, apperrors.NewProcessingError("failed to process PDF", err)
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = strings.TrimSuffix(path.Base(fileName), path.Ext(fileName))
	}

	doc := &domain.Document{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Author:    meta.Author,
		PageCount: meta.PageCount,
		FileName:  fileName,
		FileSize:  int64(len(pdfBytes)),
	}

	storagePath := userID + "/" + doc.ID + ".pdf"
	if err := s.storage.Upload(context.Background(), storagePath, bytes.NewReader(pdfBytes)); err != nil {
		return nil, fmt.Errorf("failed to store PDF file: %w", err)
	}

	stored, err := s.repo.Store(doc, token)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Document uploaded", "user_id", userID, "document_id", stored.ID,
		"pages", stored.PageCount, "size", stored.FileSize)
	return stored, nil
}

func (s *DocumentServiceImpl) ListDocuments(userID string, token string) ([]*domain.Document, error) {
	return s.repo.ListByUser(userID, token)
}

func (s *DocumentServiceImpl) GetDocument(userID string, documentID string, token string) (*domain.Document, error) {
	return s.repo.GetByID(userID, documentID, token)
}

func (s *DocumentServiceImpl) DeleteDocument(userID string, documentID string, token string) error {
	return s.repo.Delete(userID, documentID, token)
}
