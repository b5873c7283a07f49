package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"pdf-style-reader/internal/domain"

	"github.com/supabase-community/postgrest-go"
)

// DocumentRepository implements the domain.DocumentRepository interface using Supabase.
type DocumentRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewDocumentRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.DocumentRepository {
	return &DocumentRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

func (r *DocumentRepository) Store(doc *domain.Document, token string) (*domain.Document, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{
		"id":         doc.ID,
		"user_id":    doc.UserID,
		"title":      sanitizeText(doc.Title),
		"author":     sanitizeText(doc.Author),
		"page_count": doc.PageCount,
		"file_name":  doc.FileName,
		"file_size":  doc.FileSize,
	}

	data, _, err := client.From("documents").
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to store document: empty response")
	}
	return mapToDocument(rows[0]), nil
}

func (r *DocumentRepository) ListByUser(userID string, token string) ([]*domain.Document, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From("documents").
		Select("*", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	out := make([]*domain.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapToDocument(row))
	}
	return out, nil
}

func (r *DocumentRepository) GetByID(userID string, documentID string, token string) (*domain.Document, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From("documents").
		Select("*", "", false).
		Eq("id", documentID).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrDocumentNotFound
	}
	return mapToDocument(rows[0]), nil
}

func (r *DocumentRepository) Delete(userID string, documentID string, token string) error {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return fmt.Errorf("supabase client not initialized")
	}

	_, _, err = client.From("documents").
		Delete("", "").
		Eq("id", documentID).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

func mapToDocument(data map[string]interface{}) *domain.Document {
	doc := &domain.Document{
		ID:       getString(data, "id"),
		UserID:   getString(data, "user_id"),
		Title:    getString(data, "title"),
		Author:   getString(data, "author"),
		FileName: getString(data, "file_name"),
	}

	if v, ok := data["page_count"].(float64); ok {
		doc.PageCount = int(v)
	}
	if v, ok := data["file_size"].(float64); ok {
		doc.FileSize = int64(v)
	}
	if createdAt := getString(data, "created_at"); createdAt != "" {
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			doc.CreatedAt = t
		} else if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			doc.CreatedAt = t
		}
	}
	return doc
}
