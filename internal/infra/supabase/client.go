package supabase

import (
	"fmt"

	"pdf-style-reader/internal/domain"

	"github.com/supabase-community/supabase-go"
)

// Client implements the domain.SupabaseClient interface.
type Client struct {
	client *supabase.Client
	config domain.Config
	logger domain.Logger
}

// NewClient creates a new Supabase client wrapper.
func NewClient(config domain.Config, logger domain.Logger) domain.SupabaseClient {
	return &Client{
		config: config,
		logger: logger,
	}
}

// Initialize establishes a connection to Supabase.
func (s *Client) Initialize() error {
	supabaseURL := s.config.GetSupabaseURL()
	supabaseKey := s.config.GetSupabaseKey()

	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("supabase URL and key must be provided")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseKey, &supabase.ClientOptions{})
	if err != nil {
		return fmt.Errorf("failed to create Supabase client: %w", err)
	}

	s.client = client
	s.logger.Info("Supabase client initialized successfully", "url", supabaseURL)
	return nil
}

// DB returns the anon-key client.
func (s *Client) DB() *supabase.Client {
	return s.client
}

// GetClientWithToken returns a client that sends the user's bearer token, so
// PostgREST row-level security applies to every query.
func (s *Client) GetClientWithToken(token string) (*supabase.Client, error) {
	supabaseURL := s.config.GetSupabaseURL()
	supabaseKey := s.config.GetSupabaseKey()
	if supabaseURL == "" || supabaseKey == "" {
		return nil, fmt.Errorf("supabase URL and key must be provided")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseKey, &supabase.ClientOptions{
		Headers: map[string]string{"Authorization": "Bearer " + token},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client with token: %w", err)
	}
	return client, nil
}

// ValidateToken validates a Supabase JWT token and returns user info.
func (s *Client) ValidateToken(token string) (*domain.SupabaseUser, error) {
	if s.client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	// Use an auth client bound to the access token; headers on the base
	// client do not affect GoTrue requests.
	user, err := s.client.Auth.WithToken(token).GetUser()
	if err != nil {
		s.logger.Error("Failed to validate token with Supabase", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	return &domain.SupabaseUser{
		ID:           user.ID.String(),
		Email:        user.Email,
		UserMetadata: user.UserMetadata,
		CreatedAt:    user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    user.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
