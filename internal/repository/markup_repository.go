package repository

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pdf-style-reader/internal/domain"

	"github.com/supabase-community/postgrest-go"
)

// MarkupRepository implements the domain.MarkupRepository interface using Supabase.
type MarkupRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewMarkupRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.MarkupRepository {
	return &MarkupRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

func (r *MarkupRepository) Create(markup *domain.Markup, token string) (*domain.Markup, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{
		"user_id":     markup.UserID,
		"document_id": markup.DocumentID,
		"quote":       sanitizeText(markup.Quote),
		"kind":        string(markup.Kind),
	}
	if markup.PageNumber != nil {
		row["page_number"] = *markup.PageNumber
	}
	if markup.Color != nil {
		row["color"] = colorToMap(*markup.Color)
	}

	// Request "representation" so PostgREST returns the inserted row.
	data, _, err := client.From("markups").
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create markup: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to create markup: empty response")
	}

	return mapToMarkup(rows[0]), nil
}

func (r *MarkupRepository) ListByUser(userID string, documentID *string, token string) ([]*domain.Markup, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	q := client.From("markups").
		Select("*", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false})

	if documentID != nil && *documentID != "" {
		q = q.Eq("document_id", *documentID)
	}

	data, _, err := q.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list markups: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	out := make([]*domain.Markup, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapToMarkup(row))
	}
	return out, nil
}

func (r *MarkupRepository) Delete(userID string, markupID string, token string) error {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return fmt.Errorf("supabase client not initialized")
	}

	_, _, err = client.From("markups").
		Delete("", "").
		Eq("id", markupID).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete markup: %w", err)
	}
	return nil
}

func mapToMarkup(data map[string]interface{}) *domain.Markup {
	m := &domain.Markup{
		ID:         getString(data, "id"),
		UserID:     getString(data, "user_id"),
		DocumentID: getString(data, "document_id"),
		Quote:      getString(data, "quote"),
		Kind:       domain.MarkupSubtype(getString(data, "kind")),
	}

	if pn, ok := data["page_number"]; ok && pn != nil {
		if v, ok := pn.(float64); ok {
			val := int(v)
			m.PageNumber = &val
		}
	}

	if c, ok := data["color"]; ok && c != nil {
		if fields, ok := c.(map[string]interface{}); ok {
			color := mapToColor(fields)
			m.Color = &color
		}
	}

	if createdAt := getString(data, "created_at"); createdAt != "" {
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			m.CreatedAt = t
		} else if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			m.CreatedAt = t
		}
	}

	return m
}

func colorToMap(c domain.Color) map[string]interface{} {
	return map[string]interface{}{"r": c.R, "g": c.G, "b": c.B, "a": c.A}
}

func mapToColor(fields map[string]interface{}) domain.Color {
	var c domain.Color
	if v, ok := fields["r"].(float64); ok {
		c.R = v
	}
	if v, ok := fields["g"].(float64); ok {
		c.G = v
	}
	if v, ok := fields["b"].(float64); ok {
		c.B = v
	}
	if v, ok := fields["a"].(float64); ok {
		c.A = v
	}
	return c
}

func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// sanitizeText removes characters PostgreSQL rejects in text fields (notably
// NUL bytes), which show up in quotes copied from extracted PDF text.
func sanitizeText(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "\x00", "")
	s = strings.ReplaceAll(s, "\\u0000", "")
	return s
}
