package service

import (
	"fmt"

	"pdf-style-reader/internal/domain"
)

type authService struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewAuthService(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.AuthService {
	return &authService{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// ValidateToken validates a bearer token with Supabase Auth and returns the
// user it belongs to.
func (s *authService) ValidateToken(token string) (*domain.SupabaseUser, error) {
	user, err := s.supabaseClient.ValidateToken(token)
	if err != nil {
		s.logger.Error("Failed to validate token with Supabase", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	return user, nil
}
