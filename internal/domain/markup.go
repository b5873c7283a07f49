package domain

import "time"

// Markup represents a user's saved text markup on a document: the quoted text
// plus the decoration kind the classifier detected (or the user chose).
type Markup struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	DocumentID string        `json:"document_id"`
	Quote      string        `json:"quote"`
	Kind       MarkupSubtype `json:"kind"`
	Color      *Color        `json:"color,omitempty"`
	PageNumber *int          `json:"page_number,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// MarkupRepository defines persistence operations for markups.
type MarkupRepository interface {
	Create(markup *Markup, token string) (*Markup, error)
	ListByUser(userID string, documentID *string, token string) ([]*Markup, error)
	Delete(userID string, markupID string, token string) error
}

// MarkupService defines the use-case operations for markups.
type MarkupService interface {
	CreateMarkup(userID string, markup *Markup, token string) (*Markup, error)
	ListMarkups(userID string, documentID *string, token string) ([]*Markup, error)
	DeleteMarkup(userID string, markupID string, token string) error
}
