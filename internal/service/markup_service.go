package service

import (
	"fmt"
	"time"

	"pdf-style-reader/internal/domain"
	apperrors "pdf-style-reader/pkg/errors"
)

type MarkupService struct {
	repo   domain.MarkupRepository
	logger domain.Logger
}

func NewMarkupService(repo domain.MarkupRepository, logger domain.Logger) domain.MarkupService {
	return &MarkupService{
		repo:   repo,
		logger: logger,
	}
}

func (s *MarkupService) CreateMarkup(userID string, markup *domain.Markup, token string) (*domain.Markup, error) {
	if markup == nil {
		return nil, apperrors.NewValidationError("markup is required")
	}
	markup.UserID = userID
	if markup.DocumentID == "" {
		return nil, apperrors.NewValidationError("document_id is required")
	}
	if markup.Quote == "" {
		return nil, apperrors.NewValidationError("quote is required")
	}
	switch markup.Kind {
	case domain.MarkupUnderline, domain.MarkupSquiggly, domain.MarkupStrikeOut, domain.MarkupHighlight:
	case "":
		markup.Kind = domain.MarkupHighlight
	default:
		return nil, apperrors.NewValidationError("unknown markup kind", fmt.Sprintf("%q", markup.Kind))
	}
	// created_at is assigned by the DB; keep a local value for logging if missing.
	if markup.CreatedAt.IsZero() {
		markup.CreatedAt = time.Now()
	}

	created, err := s.repo.Create(markup, token)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Markup created", "user_id", userID, "document_id", markup.DocumentID,
		"kind", markup.Kind, "markup_id", created.ID)
	return created, nil
}

func (s *MarkupService) ListMarkups(userID string, documentID *string, token string) ([]*domain.Markup, error) {
	return s.repo.ListByUser(userID, documentID, token)
}

func (s *MarkupService) DeleteMarkup(userID string, markupID string, token string) error {
	if markupID == "" {
		return apperrors.NewValidationError("markup_id is required")
	}
	return s.repo.Delete(userID, markupID, token)
}
